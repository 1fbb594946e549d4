package httpserver

import (
	"log"
	"net/http"
	"strings"
)

func (s *Server) registerRoutes() {
	s.router.Handle("/health", http.HandlerFunc(s.handleHealth))
	s.router.Handle("/verify", http.HandlerFunc(s.handleVerify))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVerify reads the bearer credential, validates it and answers with the
// keyed digest of the asserted identity. Every failure mode collapses into
// the same 401 body so callers cannot distinguish a missing credential from a
// bad signature or a malformed claim set.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	credential := extractBearerToken(r.Header.Get("Authorization"))
	digest, err := s.verifyService.VerifyAndSign(credential)
	if err != nil {
		// The cause stays in the operator log; the credential itself is
		// never written anywhere.
		log.Printf("verify rejected: %v", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"hmac": digest})
}

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
