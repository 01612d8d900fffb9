package tickets

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Fixed raster size for every ticket QR image.
const qrImageSize = 256

// QRPayload is the plain-text content encoded into a ticket's QR code.
// The ticket's own identifier leads so scanners can recover it.
func QRPayload(ticketID int64, matchDesc, username string) string {
	return fmt.Sprintf("Ticket ID: %d, Match: %s, User: %s", ticketID, matchDesc, username)
}

// QRStore rasterizes QR payloads to PNG files under the media root.
type QRStore struct{ root string }

func NewQRStore(root string) *QRStore { return &QRStore{root: root} }

// Write encodes the payload and stores the image, returning the
// media-relative path "qr_codes/ticket_<id>_qr.png".
func (s *QRStore) Write(ticketID int64, payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	rel := fmt.Sprintf("qr_codes/ticket_%d_qr.png", ticketID)
	abs := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, png, 0o644); err != nil {
		return "", fmt.Errorf("store qr: %w", err)
	}
	return rel, nil
}
