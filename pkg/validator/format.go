package validator

import (
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/docmodel/pkg/types"
)

// Preset names a built-in format. A plain string equal to a preset name
// selects that preset; any other string is a regular expression.
type Preset string

const (
	Email    Preset = "email"
	IP       Preset = "ip"
	Alnum    Preset = "alnum"
	Alpha    Preset = "alpha"
	Hex      Preset = "hex"
	UUID     Preset = "uuid"
	URL      Preset = "url"
	ObjectID Preset = "object_id"
)

const (
	CodeInvalidEmail    ErrorCode = "invalid_email"
	CodeInvalidIP       ErrorCode = "invalid_ip"
	CodeNotAlnum        ErrorCode = "not_alnum"
	CodeNotAlpha        ErrorCode = "not_alpha"
	CodeNotHex          ErrorCode = "not_hex"
	CodeInvalidUUID     ErrorCode = "invalid_uuid"
	CodeInvalidURL      ErrorCode = "invalid_url"
	CodeInvalidObjectID ErrorCode = "invalid_object_id"
)

var (
	alnumRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)
	hexRegex   = regexp.MustCompile(`^[0-9a-fA-F]+$`)
)

// matcher is the prepared form of the format parameter.
type matcher struct {
	match   func(string) bool
	code    ErrorCode
	message string
	key     string
	pattern string
}

var presets = map[Preset]matcher{
	Email:    {match: isEmail, code: CodeInvalidEmail, message: "must be a valid email address", key: "validation.email"},
	IP:       {match: isIP, code: CodeInvalidIP, message: "must be a valid IP address", key: "validation.ip"},
	Alnum:    {match: alnumRegex.MatchString, code: CodeNotAlnum, message: "must contain only letters and digits", key: "validation.alphanumeric"},
	Alpha:    {match: alphaRegex.MatchString, code: CodeNotAlpha, message: "must contain only letters", key: "validation.alpha"},
	Hex:      {match: hexRegex.MatchString, code: CodeNotHex, message: "must be a hexadecimal string", key: "validation.hex"},
	UUID:     {match: isUUID, code: CodeInvalidUUID, message: "must be a valid UUID", key: "validation.uuid"},
	URL:      {match: isURL, code: CodeInvalidURL, message: "must be a valid URL", key: "validation.url"},
	ObjectID: {match: isObjectID, code: CodeInvalidObjectID, message: "must be a valid object id", key: "validation.object_id"},
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	local, domain, ok := strings.Cut(value, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func isIP(value string) bool {
	return net.ParseIP(value) != nil
}

func isUUID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}

func isURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func isObjectID(value string) bool {
	_, err := bson.ObjectIDFromHex(value)
	return err == nil
}

type format struct{}

func (format) Name() string { return Format }
func (format) Arity() int   { return 1 }

// Prepare resolves the format parameter: a Preset or preset name, a
// *regexp.Regexp or a pattern string.
func (format) Prepare(params types.Params) (types.Params, error) {
	raw, ok := params[types.ParamFormat]
	if !ok || raw == nil {
		return nil, invalidParams(Format, "%q parameter is required", types.ParamFormat)
	}

	var m matcher
	switch v := raw.(type) {
	case Preset:
		preset, ok := presets[v]
		if !ok {
			return nil, invalidParams(Format, "unknown preset %q", string(v))
		}
		m = preset
	case *regexp.Regexp:
		if v == nil {
			return nil, invalidParams(Format, "nil pattern")
		}
		m = patternMatcher(v)
	case string:
		if preset, ok := presets[Preset(v)]; ok {
			m = preset
			break
		}
		re, err := patterns.compile(v)
		if err != nil {
			return nil, invalidParams(Format, "bad pattern %q: %v", v, err)
		}
		m = patternMatcher(re)
	case matcher:
		m = v
	default:
		return nil, invalidParams(Format, "unsupported format %T", raw)
	}
	return params.Merge(types.Params{types.ParamFormat: m}), nil
}

func patternMatcher(re *regexp.Regexp) matcher {
	return matcher{
		match:   re.MatchString,
		code:    CodeWrongFormat,
		message: "has an invalid format",
		key:     "validation.format",
		pattern: re.String(),
	}
}

func (format) Validate(params types.Params, values ...any) Result {
	v := values[0]
	if isNil(v) {
		return Pass()
	}
	m, ok := params[types.ParamFormat].(matcher)
	if !ok {
		return Fail(CodeWrongFormat, "has an invalid format", "validation.format", nil)
	}
	if m.match(stringify(v)) {
		return Pass()
	}
	var tv map[string]any
	if m.pattern != "" {
		tv = map[string]any{"pattern": m.pattern}
	}
	return Fail(m.code, m.message, m.key, tv)
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bson.ObjectID:
		return x.Hex()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
