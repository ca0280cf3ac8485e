package bookings

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/skip2/go-qrcode"

	"gameopolis-api/internal/models"
)

// PassGenerator renders a booking as a scannable QR pass. The payload is
// AES-encrypted with the configured secret so door staff scanners can
// verify it came from us.
type PassGenerator struct {
	secret []byte
}

func NewPassGenerator(secret string) *PassGenerator {
	hashed := sha256.Sum256([]byte(secret)) // normalize to 32 bytes
	return &PassGenerator{secret: hashed[:]}
}

type passPayload struct {
	BookingID string `json:"bookingId"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Players   int    `json:"players"`
	Status    string `json:"status"`
}

// GeneratePass returns a 256x256 PNG QR code for the booking.
func (g *PassGenerator) GeneratePass(booking models.Booking) ([]byte, error) {
	data, err := json.Marshal(passPayload{
		BookingID: booking.BookingID,
		Name:      booking.Name,
		Date:      booking.Date,
		Time:      booking.Time,
		Players:   booking.Players,
		Status:    booking.Status,
	})
	if err != nil {
		return nil, err
	}

	encrypted, err := encryptAES(data, g.secret)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(encrypted, qrcode.Medium, 256)
}

func encryptAES(data []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	ciphertext := make([]byte, aes.BlockSize+len(data))
	iv := ciphertext[:aes.BlockSize]

	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	stream := cipher.NewCFBEncrypter(block, iv)
	stream.XORKeyStream(ciphertext[aes.BlockSize:], data)

	return base64.URLEncoding.EncodeToString(ciphertext), nil
}
