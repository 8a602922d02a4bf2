package game

import (
	"encoding/base64"
	"errors"

	"github.com/lonng/nano/pipeline"
	"github.com/lonng/nano/session"
	"github.com/xxtea/xxtea-go/xxtea"
)

var errDecrypt = errors.New("decrypt failed")

// crypto encrypts every payload with xxtea, the cipher text travels base64
// encoded.
type crypto struct {
	key []byte
}

func newCrypto(key []byte) *crypto {
	return &crypto{key: key}
}

func (c *crypto) inbound(s *session.Session, msg *pipeline.Message) error {
	out, err := base64.StdEncoding.DecodeString(string(msg.Data))
	if err != nil {
		logger.Errorf("inbound: %v, data=%s", err, msg.Data)
		return err
	}

	out = xxtea.Decrypt(out, c.key)
	if out == nil {
		return errDecrypt
	}
	msg.Data = out
	return nil
}

func (c *crypto) outbound(s *session.Session, msg *pipeline.Message) error {
	out := xxtea.Encrypt(msg.Data, c.key)
	msg.Data = []byte(base64.StdEncoding.EncodeToString(out))
	return nil
}
