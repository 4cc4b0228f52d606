package process

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/envelope-zero/expense-parser/internal/expense"
	"github.com/envelope-zero/expense-parser/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingText = errors.New(`Invalid input. Please provide a "text" field.`)
	ErrNoAmount    = errors.New("Could not determine the amount from the text.")
)

// Request is the body of a process request.
type Request struct {
	Text string `json:"text" binding:"required" example:"bought pizza for 250 rupees"` // Free text description of the expense
}

// Response is the parsed expense.
type Response struct {
	Item     string  `json:"item" example:"Pizza"`     // The item that was bought, "Unknown Item" if it could not be determined
	Amount   float64 `json:"amount" example:"250"`     // The first number found in the text
	Category string  `json:"category" example:"Food"` // The predicted spending category
}

// Controller serves the process endpoint with the parser it has been created with.
type Controller struct {
	parser *expense.Parser
}

func NewController(parser *expense.Parser) Controller {
	return Controller{parser: parser}
}

// RegisterRoutes registers the routes for processing with
// the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.POST("", co.Create)
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Process
//	@Success		204
//	@Router			/process [options]
func Options(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Create parses the submitted text into an expense
//
//	@Summary		Process expense text
//	@Description	Extracts item and amount from a free text description of an expense and predicts its category
//	@Tags			Process
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	Response
//	@Failure		400		{object}	httputil.HTTPError
//	@Param			request	body		Request	true	"Expense text"
//	@Router			/process [post]
func (co Controller) Create(c *gin.Context) {
	log.Info().Str("request-id", requestid.Get(c)).Msg("request received at /process")

	var request Request
	if err := httputil.BindData(c, &request); err != nil {
		// Anything but a JSON syntax error means there is no usable text
		var validationErrors validator.ValidationErrors
		var typeError *json.UnmarshalTypeError
		if errors.Is(err, httputil.ErrRequestBodyEmpty) || errors.As(err, &validationErrors) || errors.As(err, &typeError) {
			err = ErrMissingText
		}

		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	result, err := co.parser.Parse(request.Text)
	if errors.Is(err, expense.ErrNoAmount) {
		httputil.NewError(c, http.StatusBadRequest, ErrNoAmount)
		return
	} else if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	log.Debug().
		Str("request-id", requestid.Get(c)).
		Str("item", result.Item).
		Float64("amount", result.Amount).
		Str("category", result.Category).
		Msg("processed expense")

	c.JSON(http.StatusOK, Response{
		Item:     result.Item,
		Amount:   result.Amount,
		Category: result.Category,
	})
}
