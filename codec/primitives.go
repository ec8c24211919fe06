package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

type flag struct{}

// Flag maps the service's integer booleans. Absent, blank and 0 decode to false; any other
// integer decodes to true.
var Flag Codec[bool] = flag{}

func (flag) Decode(wire mo.Option[string]) (bool, error) {
	s, ok := present(wire)
	if !ok {
		return false, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse flag %q: %w", s, err)
	}
	return n != 0, nil
}

func (flag) Encode(value bool) mo.Option[string] {
	if value {
		return mo.Some("1")
	}
	return mo.Some("0")
}

type delimited struct {
	split string
	join  string
}

var (
	// CommaList handles tag lists: "AAA, BBB" <-> ["AAA", "BBB"].
	CommaList Codec[[]string] = delimited{split: ",", join: ", "}

	// SemicolonList handles synonym lists on the read side.
	SemicolonList Codec[[]string] = delimited{split: ";", join: "; "}
)

// Decode never returns nil: blank or absent input is an empty slice. Blank tokens are dropped.
func (d delimited) Decode(wire mo.Option[string]) ([]string, error) {
	s, ok := present(wire)
	if !ok {
		return []string{}, nil
	}
	tokens := lo.Map(strings.Split(s, d.split), func(token string, _ int) string {
		return strings.TrimSpace(token)
	})
	return lo.Filter(tokens, func(token string, _ int) bool {
		return token != ""
	}), nil
}

// Encode writes no element for a nil slice and an empty element for an empty one.
func (d delimited) Encode(value []string) mo.Option[string] {
	if value == nil {
		return mo.None[string]()
	}
	return mo.Some(strings.Join(value, d.join))
}

var (
	tagSpan     = regexp.MustCompile(`<.*?>`)
	bracketSpan = regexp.MustCompile(`\[.*?]`)
)

type markup struct{}

// Markup strips HTML tags and BBCode-style bracket spans from free text. Encoding is identity.
var Markup Codec[string] = markup{}

func (markup) Decode(wire mo.Option[string]) (string, error) {
	s := tagSpan.ReplaceAllString(wire.OrEmpty(), "")
	return bracketSpan.ReplaceAllString(s, ""), nil
}

func (markup) Encode(value string) mo.Option[string] {
	return mo.Some(value)
}

type epochSeconds struct{}

// EpochSeconds maps seconds since the Unix epoch to UTC timestamps. Absent decodes to the zero time.
var EpochSeconds Codec[time.Time] = epochSeconds{}

func (epochSeconds) Decode(wire mo.Option[string]) (time.Time, error) {
	s, ok := present(wire)
	if !ok {
		return time.Time{}, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse epoch seconds %q: %w", s, err)
	}
	return time.Unix(n, 0).UTC(), nil
}

func (epochSeconds) Encode(value time.Time) mo.Option[string] {
	return mo.Some(strconv.FormatInt(value.Unix(), 10))
}

// Layouts of the two calendar date formats. They differ on purpose: the service sends
// YYYY-MM-DD but only accepts MMDDYYYY.
const (
	InboundLayout  = "2006-01-02"
	OutboundLayout = "01022006"
)

type inboundDate struct{}

// InboundDate parses dates received from the service. Unparsable input (the service sends
// 0000-00-00 for unknown dates) decodes to None instead of failing the record.
var InboundDate Decoder[mo.Option[time.Time]] = inboundDate{}

func (inboundDate) Decode(wire mo.Option[string]) (mo.Option[time.Time], error) {
	s, ok := present(wire)
	if !ok {
		return mo.None[time.Time](), nil
	}
	t, err := time.Parse(InboundLayout, s)
	if err != nil {
		return mo.None[time.Time](), nil
	}
	return mo.Some(t), nil
}

type outboundDate struct{}

// OutboundDate renders dates sent to the service.
var OutboundDate Encoder[mo.Option[time.Time]] = outboundDate{}

func (outboundDate) Encode(value mo.Option[time.Time]) mo.Option[string] {
	t, ok := value.Get()
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(t.Format(OutboundLayout))
}
