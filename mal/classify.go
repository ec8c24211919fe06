package mal

import (
	"bytes"
	"net/http"

	"github.com/malkit/malkit/malerr"
	"github.com/malkit/malkit/network"
)

// classify maps a response to its payload, to success without payload, or to a typed error.
//
//	200 with a body  payload
//	200 empty, 2xx   no payload
//	204              no payload, the session is replaced when configured
//	401              *malerr.UnauthorizedError
//	4xx              *malerr.ClientError
//	5xx              *malerr.ServerError
//	anything else    *malerr.ClientError
func (c *Client) classify(resp *network.Response) ([]byte, bool, error) {
	status := resp.Status

	switch {
	case status == http.StatusOK:
		if len(bytes.TrimSpace(resp.Body)) == 0 {
			return nil, false, nil
		}
		return resp.Body, true, nil
	case status == http.StatusNoContent:
		if c.config.ReconnectOnNoContent {
			c.reconnect()
		}
		return nil, false, nil
	case status >= 200 && status < 300:
		return nil, false, nil
	case status == http.StatusUnauthorized:
		return nil, false, &malerr.UnauthorizedError{Body: string(resp.Body)}
	case status >= 500 && status < 600:
		return nil, false, &malerr.ServerError{Status: status, Body: string(resp.Body)}
	default:
		return nil, false, &malerr.ClientError{Status: status, Body: string(resp.Body)}
	}
}

// decodeError keeps unknown enum values distinguishable from other decoding failures.
func decodeError(err error) error {
	if malerr.KindOf(err) == malerr.KindUnknownEnumValue {
		return err
	}
	return &malerr.MalformedResponseError{Cause: err}
}
