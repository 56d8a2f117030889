package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/phrazzld/trendpulse/internal/domain"
	"github.com/spf13/cobra"
)

func newTrendsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "List currently trending keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), c.service.FetchTrends(cmd.Context()))
		},
	}
}

func newPlanCmd(c *cli) *cobra.Command {
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "plan <keyword>",
		Short: "Draft a short-video content plan for a keyword",
		Long: `Draft a short-video content plan for a keyword, grounded on web search.

When both --lat and --lng are given, nearby places are searched as well and
returned in the plan's "places" list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			latSet, lngSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lng")
			if latSet != lngSet {
				return errors.New("--lat and --lng must be given together")
			}

			var loc *domain.LatLng
			if latSet {
				loc = &domain.LatLng{Lat: lat, Lng: lng}
			}
			return printJSON(cmd.OutOrStdout(), c.service.GeneratePlan(cmd.Context(), args[0], loc))
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude of the place search anchor")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude of the place search anchor")
	return cmd
}

func newThumbnailCmd(c *cli) *cobra.Command {
	var size, out string

	cmd := &cobra.Command{
		Use:   "thumbnail <prompt>",
		Short: "Render a vertical thumbnail for a prompt",
		Long: `Render a vertical thumbnail for a prompt.

The image is printed as a data URI. With --out the decoded image is written to
the given file instead and only the mode is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := domain.ParseImageSize(size)
			if err != nil {
				return err
			}

			result := c.service.GenerateThumbnail(cmd.Context(), args[0], parsed)
			if out == "" {
				return printJSON(cmd.OutOrStdout(), result)
			}

			data, mime, err := decodeDataURI(result.ImageURI)
			if err != nil {
				return fmt.Errorf("decoding image: %w", err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"file":      out,
				"mime_type": mime,
				"mode":      string(result.Mode),
			})
		},
	}

	cmd.Flags().StringVar(&size, "size", string(domain.ImageSize1K), "image size: 1K, 2K or 4K")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the decoded image to this file")
	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// decodeDataURI returns the payload and media type of a data URI. Both
// base64 and percent-encoded payloads are accepted.
func decodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", errors.New("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", errors.New("data URI has no payload")
	}

	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", err
		}
		return data, mime, nil
	}

	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return nil, "", err
	}
	return []byte(decoded), mime, nil
}
