package main

import (
	"fmt"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

func GenerateQRCodePNG(content string, size int) ([]byte, error) {
	// Generate the QR code as a PNG image
	pngBytes, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return []byte{}, err
	}
	return pngBytes, nil
}

// QRCodeText renders content as terminal blocks, two modules per character.
func QRCodeText(content string) (string, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", err
	}
	bits := q.Bitmap()
	var sb strings.Builder
	for y := 0; y < len(bits); y += 2 {
		for x := range bits[y] {
			top := bits[y][x]
			bottom := y+1 < len(bits) && bits[y+1][x]
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func qrCommand(a *App) *cobra.Command {
	var out string
	var size int
	cmd := &cobra.Command{
		Use:   "qr <text>",
		Short: "Render an address or key as a QR code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				text, err := QRCodeText(args[0])
				if err != nil {
					return fmt.Errorf("failed to generate QR code: %w", err)
				}
				_, err = fmt.Fprint(a.Out, text)
				return err
			}
			png, err := GenerateQRCodePNG(args[0], size)
			if err != nil {
				return fmt.Errorf("failed to generate QR code: %w", err)
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return err
			}
			a.Log.Printf("qr: wrote %s", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Write a PNG file instead of printing")
	cmd.Flags().IntVar(&size, "size", 256, "PNG size in pixels")
	return cmd
}
