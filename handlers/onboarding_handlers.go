package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gautam3767/Website_Onboarding_Backend/database"
	"github.com/Gautam3767/Website_Onboarding_Backend/logger"
	"github.com/Gautam3767/Website_Onboarding_Backend/metrics"
	"github.com/Gautam3767/Website_Onboarding_Backend/models"
	"github.com/Gautam3767/Website_Onboarding_Backend/services"
)

// Response messages. Clients only ever see these fixed strings.
const (
	msgSubmitted      = "Website details sent ,We will get back to you shortly"
	msgSubmitFailed   = "Failed to submit onboarding."
	msgBrandingSaved  = "Branding details saved successfully."
	msgBrandingFailed = "Failed to save branding details."
	msgNotFound       = "Submission not found."
	msgInvalidBody    = "Invalid request body."
)

// OnboardingHandler serves the intake and branding endpoints.
type OnboardingHandler struct {
	Store  database.SubmissionStore
	Mailer services.Mailer

	// From is the sender for both emails; InternalTo receives the team digest.
	From       string
	InternalTo string

	ClientAppURL  string
	PublicBaseURL string
}

// SubmitOnboarding godoc
// @Summary Submit a website onboarding form
// @Description Store the intake form, email the proposal to the client and a summary to the team
// @Tags onboarding
// @Accept json
// @Produce json
// @Param submission body object true "Intake fields: websiteType, buildMethod, features, budget, deadline, email"
// @Success 200 {object} map[string]string "Details received"
// @Failure 400 {object} map[string]string "Body is not a JSON object"
// @Failure 500 {object} map[string]string "Store or mail failure"
// @Router /onboarding [post]
//
// The submission is stored first, then the proposal goes to the client and the
// digest to the team, in that order. Any failure yields the same 500 response,
// even when the record was already saved.
func (h *OnboardingHandler) SubmitOnboarding(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.From(ctx)

	payload, err := bindPayload(c)
	if err != nil {
		log.Info("rejecting onboarding body", logger.Err(err))
		metrics.Submissions.WithLabelValues(metrics.ResultError).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidBody})
		return
	}

	sub := models.NewSubmission(payload)

	id, err := h.Store.Create(ctx, sub)
	if err != nil {
		h.submitFailed(c, "create submission", err)
		return
	}
	log = log.With(logger.SubmissionID(id))

	links := services.NewProposalLinks(h.ClientAppURL, h.PublicBaseURL, id)
	proposal := services.Message{
		From:    h.From,
		To:      sub.Email,
		Subject: services.ProposalSubject,
		HTML:    services.RenderProposalHTML(sub, links),
	}
	if err := h.send(c, metrics.AudienceClient, proposal); err != nil {
		h.submitFailed(c, "send proposal", err)
		return
	}

	digest := services.Message{
		From:    h.From,
		To:      h.InternalTo,
		Subject: services.InternalSubject,
		Text:    services.RenderInternalSummary(sub),
	}
	if err := h.send(c, metrics.AudienceInternal, digest); err != nil {
		h.submitFailed(c, "send internal summary", err)
		return
	}

	log.Info("onboarding submitted")
	metrics.Submissions.WithLabelValues(metrics.ResultOK).Inc()
	c.JSON(http.StatusOK, gin.H{"message": msgSubmitted})
}

// SaveClientDetails godoc
// @Summary Save branding details for a submission
// @Description Overwrite the branding fields of an existing submission; never creates one
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param branding body models.Branding true "Branding fields"
// @Success 200 {object} map[string]string "Branding saved"
// @Failure 400 {object} map[string]string "Body is not a JSON object"
// @Failure 404 {object} map[string]string "Submission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /client-details/{id} [post]
func (h *OnboardingHandler) SaveClientDetails(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	log := logger.From(ctx).With(logger.SubmissionID(id))

	payload, err := bindPayload(c)
	if err != nil {
		log.Info("rejecting branding body", logger.Err(err))
		metrics.BrandingUpdates.WithLabelValues(metrics.ResultError).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidBody})
		return
	}

	err = h.Store.UpdateBranding(ctx, id, models.NewBranding(payload))
	switch {
	case errors.Is(err, database.ErrNotFound):
		metrics.BrandingUpdates.WithLabelValues(metrics.ResultNotFound).Inc()
		c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
		return
	case err != nil:
		log.Error("branding update failed", logger.Err(err))
		metrics.BrandingUpdates.WithLabelValues(metrics.ResultError).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgBrandingFailed})
		return
	}

	log.Info("branding details saved")
	metrics.BrandingUpdates.WithLabelValues(metrics.ResultOK).Inc()
	c.JSON(http.StatusOK, gin.H{"message": msgBrandingSaved})
}

func (h *OnboardingHandler) send(c *gin.Context, audience string, msg services.Message) error {
	err := h.Mailer.Send(c.Request.Context(), msg)
	if err != nil {
		logger.From(c.Request.Context()).Warn("mail dispatch failed",
			logger.Email(msg.To),
			logger.String("audience", audience),
			logger.Err(err),
		)
		metrics.EmailsSent.WithLabelValues(audience, metrics.ResultError).Inc()
		return err
	}
	metrics.EmailsSent.WithLabelValues(audience, metrics.ResultOK).Inc()
	return nil
}

func (h *OnboardingHandler) submitFailed(c *gin.Context, op string, err error) {
	logger.From(c.Request.Context()).Error("submit error", logger.Op(op), logger.Err(err))
	metrics.Submissions.WithLabelValues(metrics.ResultError).Inc()
	c.JSON(http.StatusInternalServerError, gin.H{"message": msgSubmitFailed})
}

// bindPayload decodes the body as a JSON object. An empty body is treated as {}.
func bindPayload(c *gin.Context) (map[string]any, error) {
	var payload map[string]any
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return map[string]any{}, nil
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	if payload == nil {
		return map[string]any{}, nil
	}
	return payload, nil
}
