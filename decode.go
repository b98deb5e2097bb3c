package prefkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/prefkit/pkg/jsonc"
	"github.com/dmitrymomot/prefkit/pkg/validity"
)

// DecodeOption configures UnmarshalJSONC.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	ignoreUnknown bool
	collectErrors bool
}

// WithIgnoreUnknown skips document members that match no registered preference
// or group instead of failing, logging each skip at warn level.
func WithIgnoreUnknown() DecodeOption {
	return func(c *decodeConfig) {
		c.ignoreUnknown = true
	}
}

// WithCollectErrors applies every member before returning and joins the
// failures with errors.Join, instead of stopping at the first one. Members
// that fail leave their preference unchanged.
func WithCollectErrors() DecodeOption {
	return func(c *decodeConfig) {
		c.collectErrors = true
	}
}

// UnmarshalJSONC applies a JSONC document to the store: comments and trailing
// commas are stripped, the object tree is matched against the registered
// groups, and every member is assigned as the matching preference's value
// through its full validity pipeline. A JSON null clears the value so the
// default shows through again.
//
// Decoding is fail-fast by default and members already applied stay applied;
// WithCollectErrors switches to apply-everything-and-join. Members that match
// no registered preference or group fail with ErrUnknownMember unless
// WithIgnoreUnknown is set. Every per-member failure carries the stages of the
// pipeline: StageProcessingType for values of the wrong shape, StageConverting
// for lossy conversions, StageParsing for malformed duration strings or enum
// names, and StageValidityCheck onwards for the preference's own rules.
func (s *Store) UnmarshalJSONC(data []byte, opts ...DecodeOption) error {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	stripped := jsonc.Strip(data)
	if !gjson.ValidBytes(stripped) {
		return fmt.Errorf("%w: malformed JSON after comment stripping", ErrInvalidDocument)
	}
	doc := gjson.ParseBytes(stripped)
	if !doc.IsObject() {
		return fmt.Errorf("%w: top level is not an object", ErrInvalidDocument)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	d := &decoder{cfg: cfg, logger: s.logger}
	d.group(s.root, "", doc)
	return d.err()
}

// decoder carries the walk state of one UnmarshalJSONC call.
type decoder struct {
	cfg    decodeConfig
	logger *slog.Logger
	errs   []error
}

// fail records one member failure and reports whether the walk should go on.
func (d *decoder) fail(err error) bool {
	d.errs = append(d.errs, err)
	return d.cfg.collectErrors
}

func (d *decoder) err() error {
	switch len(d.errs) {
	case 0:
		return nil
	case 1:
		return d.errs[0]
	default:
		return errors.Join(d.errs...)
	}
}

// group walks one document object against one registered group, returning
// false when the walk should stop.
func (d *decoder) group(g *Group, prefix string, doc gjson.Result) bool {
	cont := true
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		path := joinPath(prefix, name)

		if sub, ok := g.Group(name); ok {
			if !value.IsObject() {
				cont = d.fail(validity.NewSetValueError(path, validity.StageProcessingType,
					fmt.Errorf("group member must be an object, got %s", jsonTypeName(value))))
				return cont
			}
			cont = d.group(sub, path, value)
			return cont
		}

		if p, ok := g.Preference(name); ok {
			cont = d.member(p, path, value)
			return cont
		}

		if d.cfg.ignoreUnknown {
			d.logger.Warn("skipping unknown document member", slog.String("path", path))
			return true
		}
		cont = d.fail(fmt.Errorf("%w: %q", ErrUnknownMember, path))
		return cont
	})
	return cont
}

// member assigns one document value to one preference through SetAny.
func (d *decoder) member(p Preference, path string, value gjson.Result) bool {
	if err := p.SetAny(decodedValue(value)); err != nil {
		return d.fail(fmt.Errorf("%q: %w", path, err))
	}
	d.logger.Debug("preference decoded", slog.String("path", path))
	return true
}

// decodedValue maps a gjson result onto the dynamic value SetAny expects.
// Numbers stay textual as json.Number so integer precision survives; objects
// and arrays pass through as containers for the coercion layer to reject.
func decodedValue(value gjson.Result) any {
	switch value.Type {
	case gjson.Null:
		return nil
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return json.Number(value.Raw)
	case gjson.String:
		return value.Str
	default:
		return value.Value()
	}
}

func jsonTypeName(value gjson.Result) string {
	switch {
	case value.Type == gjson.Null:
		return "null"
	case value.Type == gjson.True || value.Type == gjson.False:
		return "bool"
	case value.Type == gjson.Number:
		return "number"
	case value.Type == gjson.String:
		return "string"
	case value.IsArray():
		return "array"
	case value.IsObject():
		return "object"
	default:
		return "unknown"
	}
}
