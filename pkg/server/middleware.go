package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/siwa-project/siwa-go/pkg/response"
	"github.com/siwa-project/siwa-go/pkg/verifier"
)

type contextKey string

const resultKey contextKey = "siwa_result"

// Request headers carrying the signed message and its signature. The message
// is base64-encoded so the multi-line plaintext survives HTTP header rules.
const (
	HeaderMessage   = "X-SIWA-Message"
	HeaderSignature = "X-SIWA-Signature"
)

// AuthMiddleware provides HTTP middleware for SIWA sign-in verification.
// Failures are answered with the shaped response envelope, so agents behind
// any client stack receive the same remediation payload.
type AuthMiddleware struct {
	verifier      *verifier.Verifier
	domain        string
	validateNonce verifier.NonceValidator
	skill         response.SkillRef
	logger        *logrus.Logger
	optional      bool
}

// NewAuthMiddleware creates middleware that verifies sign-in attempts against
// expectedDomain using v and validateNonce.
func NewAuthMiddleware(v *verifier.Verifier, expectedDomain string, validateNonce verifier.NonceValidator) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:      v,
		domain:        expectedDomain,
		validateNonce: validateNonce,
		skill:         response.DefaultSkillRef,
		logger:        logrus.StandardLogger(),
		optional:      false,
	}
}

// SetOptional sets whether sign-in is optional.
// If true, requests without SIWA headers are allowed to pass through.
func (m *AuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// SetSkill overrides the skill reference included in failure responses.
func (m *AuthMiddleware) SetSkill(skill response.SkillRef) {
	m.skill = skill
}

// SetLogger sets the logger used for verification outcomes.
func (m *AuthMiddleware) SetLogger(logger *logrus.Logger) {
	m.logger = logger
}

// Wrap wraps an HTTP handler with SIWA authentication.
func (m *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		encodedMessage := r.Header.Get(HeaderMessage)
		signature := r.Header.Get(HeaderSignature)

		if encodedMessage == "" || signature == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.reject(w, response.Response{
				Status: response.StatusRejected,
				Code:   verifier.CodeVerificationFailed,
				Error:  "missing authentication headers",
				Skill:  &m.skill,
			})
			return
		}

		rawMessage, err := base64.StdEncoding.DecodeString(encodedMessage)
		if err != nil {
			m.reject(w, response.Response{
				Status: response.StatusRejected,
				Code:   verifier.CodeVerificationFailed,
				Error:  "invalid message encoding",
				Skill:  &m.skill,
			})
			return
		}

		result := m.verifier.Verify(r.Context(), string(rawMessage), signature, m.domain, m.validateNonce)
		if !result.Valid {
			m.logger.WithFields(logrus.Fields{
				"address":  result.Address,
				"agent_id": result.AgentID,
				"code":     result.Code,
			}).Warn("sign-in rejected")
			m.reject(w, response.Build(result, m.skill))
			return
		}

		m.logger.WithFields(logrus.Fields{
			"address":     result.Address,
			"agent_id":    result.AgentID,
			"signer_type": result.SignerType,
		}).Info("sign-in authenticated")

		ctx := context.WithValue(r.Context(), resultKey, result)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ResultFromContext extracts the verified sign-in result from the request
// context.
func ResultFromContext(ctx context.Context) (verifier.Result, bool) {
	result, ok := ctx.Value(resultKey).(verifier.Result)
	return result, ok
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, resp response.Response) {
	status := http.StatusUnauthorized
	if resp.Status == response.StatusNotRegistered {
		status = http.StatusForbidden
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		m.logger.WithError(err).Error("failed to write rejection response")
	}
}
