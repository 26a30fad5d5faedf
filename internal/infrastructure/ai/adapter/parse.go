package adapter

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
)

var errMalformedOutput = errors.New("ai: model returned an unreadable response")

// parseTransformation reads the JSON-mode output of the transform prompt.
// Models sometimes wrap JSON in a markdown fence; that is stripped first.
func parseTransformation(raw string) (port.Transformation, error) {
	body := stripFence(raw)
	if !gjson.Valid(body) {
		return port.Transformation{}, errMalformedOutput
	}
	res := gjson.Parse(body)
	out := port.Transformation{
		TransformedMessage:    strings.TrimSpace(firstString(res, "transformed_message", "transformedMessage")),
		CommunicationElements: stringArray(res, "communication_elements", "communicationElements"),
		DeliveryTips:          stringArray(res, "delivery_tips", "deliveryTips"),
	}
	if out.TransformedMessage == "" {
		return port.Transformation{}, errMalformedOutput
	}
	return out, nil
}

// parseSummary accepts either {"summary": "..."} or plain text.
func parseSummary(raw string) string {
	body := stripFence(raw)
	if gjson.Valid(body) {
		if s := gjson.Get(body, "summary"); s.Exists() {
			return strings.TrimSpace(s.String())
		}
	}
	return strings.TrimSpace(body)
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func firstString(res gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := res.Get(p); v.Exists() {
			return v.String()
		}
	}
	return ""
}

func stringArray(res gjson.Result, paths ...string) []string {
	out := []string{}
	for _, p := range paths {
		v := res.Get(p)
		if !v.Exists() {
			continue
		}
		for _, item := range v.Array() {
			if s := strings.TrimSpace(item.String()); s != "" {
				out = append(out, s)
			}
		}
		break
	}
	return out
}
