package flash

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
)

// SessionName is the cookie carrying pending messages.
const SessionName = "storefront_ui"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

var kinds = []Kind{KindSuccess, KindError, KindInfo}

// Message is a one-shot notification shown on the next rendered page.
type Message struct {
	Kind Kind
	Text string
}

// Sessions installs the signed cookie session the other helpers rely on.
func Sessions(key []byte, secure bool) gin.HandlerFunc {
	store := cookie.NewStore(key)
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(SessionName, store)
}

// Set stores m for the next request, replacing any pending message.
func Set(c *gin.Context, m Message) {
	s := sessions.Default(c)
	for _, k := range kinds {
		s.Flashes(string(k))
	}
	s.AddFlash(m.Text, string(m.Kind))
	save(s)
}

func Success(c *gin.Context, text string) { Set(c, Message{Kind: KindSuccess, Text: text}) }

func Error(c *gin.Context, text string) { Set(c, Message{Kind: KindError, Text: text}) }

// Pop returns the pending message, if any, and clears it.
func Pop(c *gin.Context) (Message, bool) {
	s := sessions.Default(c)

	var (
		m     Message
		found bool
	)
	for _, k := range kinds {
		for _, v := range s.Flashes(string(k)) {
			if text, ok := v.(string); ok && text != "" {
				m, found = Message{Kind: k, Text: text}, true
			}
		}
	}
	if found {
		save(s)
	}
	return m, found
}

func save(s sessions.Session) {
	if err := s.Save(); err != nil {
		logger.Warn("flash session not saved", map[string]any{"error": err.Error()})
	}
}
