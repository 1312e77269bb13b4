package jwt

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/boenne/jwt/internal/core"
	"github.com/boenne/jwt/internal/security"
)

// Engine creates, parses and validates tokens against one Registry and
// one Settings. It holds no state of its own and is safe for concurrent use.
type Engine struct {
	registry *Registry
	settings *Settings
	logger   *slog.Logger
	clock    Clock
}

// Option configures an Engine
type Option func(*Engine)

// WithRegistry selects the registry used to look up sign functions
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithSettings selects the defaults for hash key, time-to-live and algorithm
func WithSettings(s *Settings) Option {
	return func(e *Engine) {
		if s != nil {
			e.settings = s
		}
	}
}

// WithLogger sets the logger for rejected tokens and configuration warnings
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock replaces the time source, mainly for tests
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// NewEngine creates an Engine. Without options it shares the process-wide
// DefaultRegistry and DefaultSettings and discards log output.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		registry: defaultRegistry,
		settings: defaultSettings,
		logger:   slog.New(slog.DiscardHandler),
		clock:    utcNow,
	}
	for _, opt := range opts {
		opt(e)
	}

	if security.IsWeakKey([]byte(e.settings.HashKey())) {
		e.logger.Warn("hash key is weak, configure a strong key before issuing tokens",
			slog.String("algorithm", e.settings.Algorithm()))
	}

	return e
}

// Registry returns the registry the engine signs with
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Settings returns the defaults the engine reads
func (e *Engine) Settings() *Settings {
	return e.settings
}

// Configure applies cfg to the engine's settings after checking that its
// algorithm is registered
func (e *Engine) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !e.registry.Has(cfg.Algorithm) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, &AlgorithmError{Algorithm: cfg.Algorithm, Err: ErrUnsupportedAlgorithm})
	}
	return e.settings.Apply(cfg)
}

// NewHeader builds a header issued now. A zero ttl selects the configured
// time-to-live and a blank algorithm selects the configured algorithm.
func (e *Engine) NewHeader(ttl time.Duration, algorithm string) Header {
	if ttl == 0 {
		ttl = e.settings.TimeToLive()
	}
	if strings.TrimSpace(algorithm) == "" {
		algorithm = e.settings.Algorithm()
	}

	now := e.clock()
	return Header{
		Algorithm: algorithm,
		ExpiresAt: expiresAt(now, ttl),
		IssuedAt:  unixSeconds(now),
		Type:      TokenType,
	}
}

// Create signs header and payload into a new Token
func (e *Engine) Create(header Header, payload Payload) (Token, error) {
	header.Type = TokenType

	headerJSON, err := core.Canonicalize(header)
	if err != nil {
		return Token{}, fmt.Errorf("failed to serialize header: %w", err)
	}

	payloadJSON, err := core.Canonicalize(payload)
	if err != nil {
		return Token{}, fmt.Errorf("failed to serialize payload: %w", err)
	}

	signature, err := e.sign(header.Algorithm, headerJSON, payloadJSON)
	if err != nil {
		return Token{}, err
	}

	return Token{header: headerJSON, payload: payloadJSON, signature: signature}, nil
}

// Issue creates and encodes a token for subject with a header built by NewHeader
func (e *Engine) Issue(subject string, ttl time.Duration) (string, error) {
	token, err := e.Create(e.NewHeader(ttl, ""), NewPayload(subject))
	if err != nil {
		return "", err
	}
	return token.Encode()
}

// Parse decodes a token string without checking its signature.
// All failures are reported as a *FormatError matching ErrMalformedToken.
func (e *Engine) Parse(tokenString string) (Token, error) {
	parts, err := core.Parse(tokenString)
	if err != nil {
		return Token{}, formatError(err)
	}
	return Token{header: parts.Header, payload: parts.Payload, signature: parts.Signature}, nil
}

// Validate reports why tokenString is not valid, or nil if it is.
// The token is re-encoded from its decoded header and payload with the
// header's algorithm and the current hash key and must reproduce
// tokenString exactly. With checkExpiration, an expired token fails with
// ErrTokenExpired.
func (e *Engine) Validate(tokenString string, checkExpiration bool) error {
	token, err := e.Parse(tokenString)
	if err != nil {
		return err
	}

	header, err := token.Header()
	if err != nil {
		return &FormatError{Reason: ReasonInvalidContent, Err: err}
	}

	signature, err := e.sign(header.Algorithm, token.header, token.payload)
	if err != nil {
		return err
	}

	fresh := core.Assemble(core.EncodeSegment(token.header), core.EncodeSegment(token.payload), signature)
	if !security.EqualStrings(fresh, tokenString) {
		return ErrSignatureMismatch
	}

	if checkExpiration && hasExpired(header.ExpiresAt, e.clock()) {
		return ErrTokenExpired
	}

	return nil
}

// HasExpired reports whether token's expiry lies before the engine clock's
// current second. A header that cannot be decoded counts as expired.
func (e *Engine) HasExpired(token Token) bool {
	header, err := token.Header()
	if err != nil {
		return true
	}
	return hasExpired(header.ExpiresAt, e.clock())
}

// IsValid reports whether tokenString is well formed, correctly signed and,
// with checkExpiration, not expired. It never panics; the rejection reason
// is logged at debug level.
func (e *Engine) IsValid(tokenString string, checkExpiration bool) (valid bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("token rejected",
				slog.String("reason", "sign function panicked"),
				slog.Any("panic", r))
			valid = false
		}
	}()

	err := e.Validate(tokenString, checkExpiration)
	if err == nil {
		return true
	}

	e.logger.Debug("token rejected",
		slog.String("reason", rejectionReason(err)),
		slog.String("error", err.Error()))
	return false
}

func (e *Engine) sign(algorithm, headerJSON, payloadJSON string) (string, error) {
	f, err := e.registry.Lookup(algorithm)
	if err != nil {
		return "", err
	}

	input := core.SigningInput(core.EncodeSegment(headerJSON), core.EncodeSegment(payloadJSON))
	signature, err := f(input, e.settings.HashKey())
	if err != nil {
		return "", fmt.Errorf("failed to sign token with %s: %w", algorithm, err)
	}
	return signature, nil
}

func formatError(err error) *FormatError {
	switch {
	case errors.Is(err, core.ErrEmpty):
		return &FormatError{Reason: ReasonEmpty, Err: err}
	case errors.Is(err, core.ErrSegmentCount):
		return &FormatError{Reason: ReasonSegmentCount, Err: err}
	default:
		return &FormatError{Reason: ReasonInvalidContent, Err: err}
	}
}

func rejectionReason(err error) string {
	var fe *FormatError
	switch {
	case errors.As(err, &fe):
		return fe.Reason
	case errors.Is(err, ErrUnsupportedAlgorithm):
		return "unsupported algorithm"
	case errors.Is(err, ErrSignatureMismatch):
		return "signature mismatch"
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	default:
		return "sign failure"
	}
}
