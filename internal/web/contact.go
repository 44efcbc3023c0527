package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/metrics"
)

const (
	invalidMessage  = "Please fill in your name, a valid email address and a message."
	deliveryMessage = "Sorry, there was an error sending your message. Please try again later."
)

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form", newContactForm(contact.Payload{}, "", nil))
}

// handleContact records and delivers a submission. Validation failures
// re-render the form with the offending fields marked; delivery failures keep
// the visitor's input so they can resubmit while the worker retries.
func (s *Server) handleContact(c *gin.Context) {
	var p contact.Payload
	if err := c.ShouldBind(&p); err != nil {
		s.metrics.ObserveContact(metrics.OutcomeInvalid)
		c.HTML(http.StatusUnprocessableEntity, "contact-form", newContactForm(p, invalidMessage, nil))
		return
	}

	msg, err := s.contact.Submit(c.Request.Context(), p)
	var verr *contact.ValidationError
	switch {
	case err == nil:
		s.metrics.ObserveContact(metrics.OutcomeDelivered)
		c.HTML(http.StatusOK, "contact-success", msg.Payload)
	case errors.As(err, &verr):
		s.metrics.ObserveContact(metrics.OutcomeInvalid)
		c.HTML(http.StatusUnprocessableEntity, "contact-form", newContactForm(p.Normalize(), invalidMessage, verr.Fields))
	case errors.Is(err, contact.ErrDeliveryFailed):
		s.metrics.ObserveContact(metrics.OutcomeFailed)
		c.HTML(http.StatusOK, "contact-error", newContactForm(p.Normalize(), deliveryMessage, nil))
	default:
		s.logger.Error("contact submission failed", "error", err)
		s.metrics.ObserveContact(metrics.OutcomeFailed)
		c.HTML(http.StatusOK, "contact-error", newContactForm(p.Normalize(), deliveryMessage, nil))
	}
}
