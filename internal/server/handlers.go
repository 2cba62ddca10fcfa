package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandeepkv93/noozes/internal/model"
	"github.com/sandeepkv93/noozes/internal/share"
)

const (
	msgInvalidTime   = "Invalid time format. Please use HH:MM."
	msgInvalidMode   = "Invalid mode. Use wakeup, bedtime or now."
	msgInvalidFormat = "Invalid clock format. Use 12h or 24h."
	msgInvalidBody   = "Invalid request body."
)

type calculateRequest struct {
	Mode   string `json:"mode"`
	Time   string `json:"time"`
	Format string `json:"format"`
}

type SuggestionResponse struct {
	Time        time.Time `json:"time"`
	Display     string    `json:"display"`
	Cycle       int       `json:"cycle"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
}

type CalculateResponse struct {
	Mode        model.Mode           `json:"mode"`
	ContextTime time.Time            `json:"context_time"`
	Heading     string               `json:"heading"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCalculateQuery(c *gin.Context) {
	s.respond(c, calculateRequest{
		Mode:   c.DefaultQuery("mode", string(s.defMode)),
		Time:   c.Query("time"),
		Format: c.Query("format"),
	})
}

func (s *Server) handleCalculateBody(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("invalid request body", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
		return
	}
	if strings.TrimSpace(req.Mode) == "" {
		req.Mode = string(s.defMode)
	}
	s.respond(c, req)
}

// handleFixedMode serves the single-purpose routes. Apart from now, they
// require a time in the body.
func (s *Server) handleFixedMode(mode model.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := calculateRequest{Mode: string(mode)}
		if mode != model.ModeNow {
			if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Time) == "" {
				c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidTime})
				return
			}
			req.Mode = string(mode)
		}
		s.respond(c, req)
	}
}

func (s *Server) respond(c *gin.Context, req calculateRequest) {
	res, format, err := s.calculate(req)
	if err != nil {
		s.logger.Debug("calculation rejected", "mode", req.Mode, "time", req.Time, "error", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: userMessage(err)})
		return
	}
	c.JSON(http.StatusOK, NewCalculateResponse(res, format))
}

func (s *Server) calculate(req calculateRequest) (model.Result, model.ClockFormat, error) {
	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		return model.Result{}, "", err
	}
	format := s.format
	if strings.TrimSpace(req.Format) != "" {
		format, err = model.ParseClockFormat(req.Format)
		if err != nil {
			return model.Result{}, "", err
		}
	}
	res, err := s.calc.Calculate(mode, req.Time)
	if err != nil {
		return model.Result{}, "", err
	}
	return res, format, nil
}

func NewCalculateResponse(res model.Result, format model.ClockFormat) CalculateResponse {
	out := CalculateResponse{
		Mode:        res.Mode,
		ContextTime: res.ContextTime,
		Heading:     model.Heading(res.Mode),
		Suggestions: make([]SuggestionResponse, 0, len(res.Suggestions)),
	}
	for _, sg := range res.Suggestions {
		out.Suggestions = append(out.Suggestions, SuggestionResponse{
			Time:        sg.Time,
			Display:     model.FormatClock(sg.Time, format),
			Cycle:       sg.Cycle,
			Hours:       sg.Hours(),
			Description: model.DescribeCycles(sg.Cycle),
		})
	}
	return out
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidTimeOfDay):
		return msgInvalidTime
	case errors.Is(err, model.ErrInvalidMode):
		return msgInvalidMode
	case errors.Is(err, model.ErrInvalidClockFormat):
		return msgInvalidFormat
	default:
		return err.Error()
	}
}

type pageSuggestion struct {
	Display     string
	Description string
	ShareText   string
}

type PageData struct {
	Mode        string
	Time        string
	Format      string
	Heading     string
	Prompt      string
	Context     string
	Error       string
	Suggestions []pageSuggestion
	Version     string
}

func (s *Server) handlePage(c *gin.Context) {
	data := PageData{
		Mode:    c.DefaultQuery("mode", string(s.defMode)),
		Time:    c.DefaultQuery("time", s.defTime),
		Format:  c.DefaultQuery("format", string(s.format)),
		Version: s.version,
	}
	if mode, err := model.ParseMode(data.Mode); err == nil {
		data.Mode = string(mode)
		data.Prompt = model.Prompt(mode)
	}

	// Only compute when the form was submitted, so a bare visit shows the form.
	if c.Query("mode") != "" {
		res, format, err := s.calculate(calculateRequest{Mode: data.Mode, Time: data.Time, Format: data.Format})
		if err != nil {
			data.Error = userMessage(err)
		} else {
			data.Heading = model.Heading(res.Mode)
			data.Context = res.ContextTime.Format("Mon Jan 2, ") + model.FormatClock(res.ContextTime, format)
			for _, sg := range res.Suggestions {
				display := model.FormatClock(sg.Time, format)
				data.Suggestions = append(data.Suggestions, pageSuggestion{
					Display:     display,
					Description: model.DescribeCycles(sg.Cycle),
					ShareText:   share.Text(res.Mode, display, s.shareURL),
				})
			}
		}
	}
	c.HTML(http.StatusOK, "page", data)
}
