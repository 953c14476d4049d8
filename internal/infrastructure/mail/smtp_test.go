package mail

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"

	"content-site-api/internal/config"
	"content-site-api/internal/domain"
)

type fakeSender struct {
	sent []*gomail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*gomail.Msg) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, messages...)
	return nil
}

func withSender(s sender) *SMTPNotifier {
	return &SMTPNotifier{newClient: func() (sender, error) { return s, nil }}
}

// startRelay runs a minimal SMTP server on loopback and counts the messages
// it accepts.
func startRelay(t *testing.T) (int, *atomic.Int64) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	delivered := &atomic.Int64{}
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go serveSMTP(conn, delivered)
		}
	}()
	return ln.Addr().(*net.TCPAddr).Port, delivered
}

func serveSMTP(conn net.Conn, delivered *atomic.Int64) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	reply := func(line string) { _, _ = fmt.Fprintf(conn, "%s\r\n", line) }

	reply("220 localhost ESMTP")
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"):
			reply("250-localhost")
			reply("250 8BITMIME")
		case strings.HasPrefix(cmd, "DATA"):
			reply("354 End data with <CR><LF>.<CR><LF>")
			if err := readData(r); err != nil {
				return
			}
			delivered.Add(1)
			reply("250 OK queued")
		case strings.HasPrefix(cmd, "QUIT"):
			reply("221 Bye")
			return
		default:
			reply("250 OK")
		}
	}
}

func readData(r *bufio.Reader) error {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return err
		}
		if strings.TrimRight(line, "\r\n") == "." {
			return nil
		}
	}
}

func testNotification() domain.Notification {
	return domain.Notification{
		From:    "site@example.com",
		To:      "owner@example.com",
		Subject: "New Contact Form Submission from Ada",
		Body:    "Name: Ada\nEmail: ada@example.com\nMessage: Hello",
	}
}

func TestSMTPNotifier_Send(t *testing.T) {
	t.Run("delivers message", func(t *testing.T) {
		fake := &fakeSender{}
		n := withSender(fake)

		require.NoError(t, n.Send(context.Background(), testNotification()))
		require.Len(t, fake.sent, 1)

		var buf bytes.Buffer
		_, err := fake.sent[0].WriteTo(&buf)
		require.NoError(t, err)

		raw := buf.String()
		assert.Contains(t, raw, "Subject: New Contact Form Submission from Ada")
		assert.Contains(t, raw, "owner@example.com")
		assert.Contains(t, raw, "site@example.com")
		assert.Contains(t, raw, "Message: Hello")
	})

	t.Run("relay failure is returned", func(t *testing.T) {
		n := withSender(&fakeSender{err: errors.New("dial tcp: refused")})

		err := n.Send(context.Background(), testNotification())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refused")
	})

	t.Run("client construction failure is returned", func(t *testing.T) {
		n := &SMTPNotifier{newClient: func() (sender, error) { return nil, errors.New("bad options") }}

		err := n.Send(context.Background(), testNotification())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad options")
	})

	t.Run("missing recipient", func(t *testing.T) {
		fake := &fakeSender{}
		n := withSender(fake)

		notification := testNotification()
		notification.To = ""
		assert.Error(t, n.Send(context.Background(), notification))
		assert.Empty(t, fake.sent)
	})
}

func TestBuildMessage_InvalidAddresses(t *testing.T) {
	n := testNotification()
	n.From = "not an address"
	_, err := buildMessage(n)
	assert.Error(t, err)

	n = testNotification()
	n.To = "@@"
	_, err = buildMessage(n)
	assert.Error(t, err)
}

func TestNewSMTPNotifier(t *testing.T) {
	n, err := NewSMTPNotifier(config.MailConfig{Host: "localhost", Port: 1025})
	require.NoError(t, err)
	assert.NotNil(t, n.newClient)

	_, err = NewSMTPNotifier(config.MailConfig{Host: "", Port: 25})
	assert.Error(t, err)
}

func TestSMTPNotifier_ConcurrentSends(t *testing.T) {
	port, delivered := startRelay(t)
	n, err := NewSMTPNotifier(config.MailConfig{Host: "127.0.0.1", Port: port})
	require.NoError(t, err)

	const sends = 8
	errs := make(chan error, sends)
	var wg sync.WaitGroup
	for i := 0; i < sends; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- n.Send(context.Background(), testNotification())
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int64(sends), delivered.Load())
}
