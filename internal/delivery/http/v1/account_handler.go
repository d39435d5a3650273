package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type AccountHandler struct {
	authUC domain.AuthUsecase
	log    *zap.Logger
}

// AccountRoutes groups what the account routes need besides the store.
type AccountRoutes struct {
	AuthUC    domain.AuthUsecase
	LoginRate gin.HandlerFunc
	Log       *zap.Logger
}

// NewAccountHandler registers /accounts: registration through the CRUD
// handler, plus login and the current-user lookup.
func NewAccountHandler(api *gin.RouterGroup, repo domain.UserRepository, validate *validator.Validate, routes AccountRoutes) {
	handler := &AccountHandler{
		authUC: routes.AuthUC,
		log:    routes.Log.With(zap.String("resource", "accounts")),
	}

	accounts := api.Group("/accounts")

	// Static routes before the CRUD /:id wildcard
	login := []gin.HandlerFunc{handler.Login}
	if routes.LoginRate != nil {
		login = append([]gin.HandlerFunc{routes.LoginRate}, login...)
	}
	accounts.POST("/login", login...)
	accounts.GET("/me", middleware.AuthMiddleware(routes.AuthUC), handler.Me)

	rules := validation.NewRuleSet[domain.RegisterUserModel](validate, domain.RegisterUserModelRules)
	NewCrudHandler[domain.User, domain.RegisterUserModel]("accounts", repo, rules, routes.Log).Register(accounts)
}

// Login godoc
// @Summary      Login
// @Description  Exchange a username and password for a bearer token
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        credentials  body      domain.LoginRequest  true  "Credentials"
// @Success      200          {object}  domain.AuthToken
// @Failure      400          {object}  response.GlobalErrorResponse
// @Failure      401          {object}  response.GlobalErrorResponse
// @Failure      429          {object}  response.GlobalErrorResponse
// @Router       /accounts/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("UserName and Password are required"))
		return
	}

	token, err := h.authUC.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		h.log.Info("Login rejected", zap.String("user_name", req.UserName), zap.Error(err))
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, token)
}

// Me godoc
// @Summary      Current user
// @Description  Return the account the bearer token belongs to
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.GlobalErrorResponse
// @Router       /accounts/me [get]
func (h *AccountHandler) Me(c *gin.Context) {
	user, ok := c.Get(string(domain.KeyUser))
	if !ok {
		c.Error(apperror.Unauthorized("Authorization header required"))
		return
	}

	response.Success(c, http.StatusOK, user)
}
