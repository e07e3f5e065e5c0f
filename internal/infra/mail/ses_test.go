//go:build unit

package mail_test

import (
	"context"
	"errors"
	"testing"

	"ticketing-notifier/internal/infra/mail"
	"ticketing-notifier/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	in  *ses.SendEmailInput
	err error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("m-1")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	ctx := context.Background()
	cfg := config.MailConfig{From: "no-reply@example.com"}

	t.Run("plain text message", func(t *testing.T) {
		client := &fakeSES{}
		err := mail.NewSESMailer(client, cfg).Send(ctx, "maria@example.com", "Ticket assigned", "Hello Maria")

		require.NoError(t, err)
		assert.Equal(t, "no-reply@example.com", aws.ToString(client.in.Source))
		assert.Equal(t, []string{"maria@example.com"}, client.in.Destination.ToAddresses)
		assert.Equal(t, "Ticket assigned", aws.ToString(client.in.Message.Subject.Data))
		assert.Equal(t, "Hello Maria", aws.ToString(client.in.Message.Body.Text.Data))
	})

	t.Run("error names the recipient", func(t *testing.T) {
		client := &fakeSES{err: errors.New("MessageRejected")}
		err := mail.NewSESMailer(client, cfg).Send(ctx, "maria@example.com", "s", "b")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "maria@example.com")
		assert.Contains(t, err.Error(), "MessageRejected")
	})
}
