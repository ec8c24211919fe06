package mal

import (
	"context"
	"fmt"
	"net/http"

	"github.com/malkit/malkit/model"
	"github.com/malkit/malkit/network"
)

// VerifyCredentials returns the account behind the configured credentials.
// Wrong credentials fail with *malerr.UnauthorizedError.
func (c *Client) VerifyCredentials(ctx context.Context) (*model.User, error) {
	payload, ok, err := c.exchange(ctx, network.Request{
		Method: http.MethodGet,
		Path:   "/api/account/verify_credentials.xml",
	})
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}
	if !ok {
		return nil, nil
	}

	user, err := model.DecodeUser(payload)
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", decodeError(err))
	}

	return user, nil
}
