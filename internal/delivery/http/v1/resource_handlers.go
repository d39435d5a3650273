package v1

import (
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// NewEmailHandler registers /email-types.
func NewEmailHandler(api *gin.RouterGroup, repo domain.EmailRepository, validate *validator.Validate, log *zap.Logger) {
	rules := validation.NewRuleSet[domain.EmailModel](validate, domain.EmailModelRules)
	NewCrudHandler[domain.Email, domain.EmailModel]("email-types", repo, rules, log).
		Register(api.Group("/email-types"))
}

// NewIndustryTypeHandler registers /industry-types.
func NewIndustryTypeHandler(api *gin.RouterGroup, repo domain.IndustryTypeRepository, validate *validator.Validate, log *zap.Logger) {
	rules := validation.NewRuleSet[domain.IndustryTypeModel](validate, domain.IndustryTypeModelRules)
	NewCrudHandler[domain.IndustryType, domain.IndustryTypeModel]("industry-types", repo, rules, log).
		Register(api.Group("/industry-types"))
}

// NewStatusHandler registers /job-statuses.
func NewStatusHandler(api *gin.RouterGroup, repo domain.StatusRepository, validate *validator.Validate, log *zap.Logger) {
	rules := validation.NewRuleSet[domain.StatusModel](validate, domain.StatusModelRules)
	NewCrudHandler[domain.Status, domain.StatusModel]("job-statuses", repo, rules, log).
		Register(api.Group("/job-statuses"))
}

// NewPersonNameHandler registers /person-names.
func NewPersonNameHandler(api *gin.RouterGroup, repo domain.PersonNameRepository, validate *validator.Validate, log *zap.Logger) {
	rules := validation.NewRuleSet[domain.PersonNameModel](validate, domain.PersonNameModelRules)
	NewCrudHandler[domain.PersonName, domain.PersonNameModel]("person-names", repo, rules, log).
		Register(api.Group("/person-names"))
}
