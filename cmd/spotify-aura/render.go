package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/justestif/go-spotify-aura/internal/aura"
	"github.com/justestif/go-spotify-aura/internal/config"
	"github.com/justestif/go-spotify-aura/internal/logging"
	"github.com/justestif/go-spotify-aura/internal/profile"
	"github.com/justestif/go-spotify-aura/internal/spotify"
)

var (
	renderUser    string
	renderOutDir  string
	renderTimeout time.Duration
)

var renderCmd = &cobra.Command{
	Use:   "render [audio features JSON | -]",
	Short: "Render an aura image and print its summary",
	Long: "Reads Spotify audio features (the /v1/audio-features response or a bare array)\n" +
		"from a file or stdin, writes the aura PNG and prints colors, adjectives and star ratings.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())
		logger := logging.WithComponent("render")

		tracks, err := readTracks(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		logger.Debug().Int("tracks", len(tracks)).Str("source", args[0]).Msg("audio features loaded")

		ctx := cmd.Context()
		if renderTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, renderTimeout)
			defer cancel()
		}

		svc := profile.New(cfg.Render.Options(), logger)
		p, err := svc.Build(ctx, tracks)
		if err != nil {
			if errors.Is(err, aura.ErrEmptyInput) {
				return fmt.Errorf("%s contains no tracks with audio features: %w", args[0], err)
			}
			return err
		}

		outDir := cfg.OutputDir
		if renderOutDir != "" {
			outDir = renderOutDir
		}
		path, err := svc.Save(p, outDir, renderUser, time.Now())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, profile.FormatSummary(p, renderUser))
		fmt.Fprintf(out, "\nSaved %s\n", path)
		return nil
	},
}

// readTracks decodes audio features from the named file, or from stdin
// when name is "-".
func readTracks(stdin io.Reader, name string) ([]aura.TrackFeatures, error) {
	if name == "-" {
		return spotify.DecodeAudioFeatures(stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening audio features: %w", err)
	}
	defer f.Close()

	return spotify.DecodeAudioFeatures(f)
}

func init() {
	renderCmd.Flags().StringVarP(&renderUser, "user", "u", "", "listener name used in the summary and file name")
	renderCmd.Flags().StringVarP(&renderOutDir, "out", "o", "", "output directory (overrides output_dir)")
	renderCmd.Flags().DurationVar(&renderTimeout, "timeout", 30*time.Second, "maximum time spent rendering")
}
