package game

import (
	"bytes"
	"testing"

	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/lonng/nano/pipeline"
	"github.com/pkg/errors"
)

func TestErrorResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{errutil.ErrInvalidTile, errutil.Code(errutil.ErrInvalidTile)},
		{errors.Wrap(errutil.ErrUnknownRule, "riichi"), errutil.Code(errutil.ErrUnknownRule)},
		{errors.New("boom"), errutil.Unknown},
	}

	for _, c := range cases {
		r := errorResponse(c.err)
		if r.Code != c.code || r.Error != c.err.Error() {
			t.Fatalf("expect: %d, got: %+v", c.code, r)
		}
	}
}

func TestCrypto(t *testing.T) {
	c := newCrypto([]byte("hKKJdfskj997sdSk"))
	payload := []byte(`{"hand":"123m 456m 789p EEE 1s","rule":"default"}`)

	msg := &pipeline.Message{Data: append([]byte(nil), payload...)}
	if err := c.outbound(nil, msg); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(msg.Data, payload) {
		t.Fatal("payload not encrypted")
	}
	if err := c.inbound(nil, msg); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(msg.Data, payload) {
		t.Fatalf("expect: %s, got: %s", payload, msg.Data)
	}

	bad := &pipeline.Message{Data: []byte("not base64!")}
	if err := c.inbound(nil, bad); err == nil {
		t.Fatal("expect error")
	}
}

func BenchmarkCrypto_Inbound(b *testing.B) {
	b.ReportAllocs()
	c := newCrypto([]byte("hKKJdfskj997sdSk"))
	payload := []byte(`{"tiles":["1m","4m","7m","2p","5p","8p","3s","6s","9s","E","S","W","N"]}`)
	msg := &pipeline.Message{Data: payload}
	c.outbound(nil, msg)
	cipher := msg.Data
	for i := 0; i < b.N; i++ {
		c.inbound(nil, &pipeline.Message{Data: cipher})
	}
}
