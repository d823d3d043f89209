package http

import (
	"errors"

	"brewpub-assistant/internal/domain"
	"brewpub-assistant/internal/ports/input"
	"brewpub-assistant/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv       input.AssistantService
	db        *gorm.DB
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.AssistantService, db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		db:        db,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// HandleTurn func
/* process one conversation turn */
// HandleTurn godoc
// @Summary Process a conversation turn
// @Description Processes one customer message and returns the assistant's reply
// @Tags ASSISTANT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/assistant/turn	[post]
// @Produce json
// @param HandleTurn body TurnRequest true "HandleTurn"
func (hdl *HTTPHandler) HandleTurn(c *fiber.Ctx) error {
	var request TurnRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}
	// Convert HTTP request to domain request
	domainReq := domain.TurnRequest{
		SessionID: request.SessionID,
		Message:   request.Message,
	}
	response, err := hdl.srv.HandleTurn(c.UserContext(), domainReq)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			msg := ResponseBody{
				Status: BadRequest,
			}
			msg.Status.Message = []string{
				err.Error(),
			}
			return c.Status(fiber.StatusBadRequest).JSON(msg)
		}
		logrus.Errorln(err)
		msg := ResponseBody{
			Status: InternalServerError,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusInternalServerError).JSON(msg)
	}
	// Convert domain response to HTTP response
	data := TurnResponse{
		SessionID: response.SessionID,
		Reply:     response.Reply,
		Intent:    string(response.Intent),
		State:     string(response.State),
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// ResetSession func
/* abandon a conversation */
// ResetSession godoc
// @Summary Reset a conversation session
// @Description Abandons a conversation and discards its state
// @Tags ASSISTANT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/assistant/session/{id}	[delete]
// @Produce json
// @param id path string true "session id"
func (hdl *HTTPHandler) ResetSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.srv.ResetSession(c.UserContext(), id); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// GetMenu func
/* render the catalog */
// GetMenu godoc
// @Summary Get menu
// @Description Renders the current catalog as customer-facing text
// @Tags MENU
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/menu	[get]
// @Produce json
func (hdl *HTTPHandler) GetMenu(c *fiber.Ctx) error {
	menu, err := hdl.srv.Menu(c.UserContext())
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: MenuResponse{Menu: menu}})
}

// GetOrder func
/* fetch a submitted order */
// GetOrder godoc
// @Summary Get order
// @Description Fetches a submitted order by ID
// @Tags ORDER
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/orders/{id}	[get]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) GetOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	response, err := hdl.srv.Order(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
		}
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
		}
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}
