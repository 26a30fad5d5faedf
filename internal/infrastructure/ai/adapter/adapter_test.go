package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	cacheadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/cache/adapter"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

func TestParseTransformation(t *testing.T) {
	raw := "```json\n" + `{
		"transformed_message": " I feel lonely when we skip dinner together. ",
		"communication_elements": ["I-statement", "", "names a need"],
		"delivery_tips": ["Pick a calm moment"]
	}` + "\n```"

	out, err := parseTransformation(raw)
	require.NoError(t, err)
	assert.Equal(t, "I feel lonely when we skip dinner together.", out.TransformedMessage)
	assert.Equal(t, []string{"I-statement", "names a need"}, out.CommunicationElements)
	assert.Equal(t, []string{"Pick a calm moment"}, out.DeliveryTips)
}

func TestParseTransformationAcceptsCamelCase(t *testing.T) {
	out, err := parseTransformation(`{"transformedMessage":"ok","deliveryTips":["slow down"]}`)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.TransformedMessage)
	assert.Empty(t, out.CommunicationElements)
	assert.Equal(t, []string{"slow down"}, out.DeliveryTips)
}

func TestParseTransformationRejectsGarbage(t *testing.T) {
	_, err := parseTransformation("sorry, I can't help with that")
	assert.ErrorIs(t, err, errMalformedOutput)

	_, err = parseTransformation(`{"delivery_tips":[]}`)
	assert.ErrorIs(t, err, errMalformedOutput)
}

func TestParseSummary(t *testing.T) {
	assert.Equal(t, "They agreed.", parseSummary(`{"summary":" They agreed. "}`))
	assert.Equal(t, "Plain text.", parseSummary("Plain text."))
}

type countingTransformer struct {
	calls int
}

func (c *countingTransformer) Transform(_ context.Context, req port.TransformRequest) (port.Transformation, error) {
	c.calls++
	return port.Transformation{TransformedMessage: "soft: " + req.Message, DeliveryTips: []string{"breathe"}}, nil
}

func TestCachedTransformerServesRepeatsFromCache(t *testing.T) {
	next := &countingTransformer{}
	cached := NewCachedTransformer(next, cacheadapter.NewMemoryCache(), "model-a", time.Hour, nil)
	ctx := context.Background()

	first, err := cached.Transform(ctx, port.TransformRequest{Message: "you never listen"})
	require.NoError(t, err)
	second, err := cached.Transform(ctx, port.TransformRequest{Message: "you never listen"})
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)

	_, err = cached.Transform(ctx, port.TransformRequest{Message: "you never listen", Context: "at dinner"})
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCacheKeyDependsOnModel(t *testing.T) {
	req := port.TransformRequest{Message: "m"}
	a := NewCachedTransformer(nil, nil, "a", time.Minute, nil)
	b := NewCachedTransformer(nil, nil, "b", time.Minute, nil)
	assert.NotEqual(t, a.key(req), b.key(req))
}

func TestUnavailableReports503Kind(t *testing.T) {
	_, err := Unavailable{}.Transform(context.Background(), port.TransformRequest{Message: "x"})
	assert.ErrorIs(t, err, shared.ErrUnavailable)
}
