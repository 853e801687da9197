package service

import (
	"errors"
	"strconv"
	"strings"

	"funkopop-api/internal/apperror"
	"funkopop-api/internal/model"
	"funkopop-api/internal/repository"
	"funkopop-api/internal/ws"
	"funkopop-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var funkoPopCreateRules = []validator.Field{
	{
		Name: "title",
		Checks: []validator.Check{
			{Tag: "required", Message: "Cannot create funko pop without title!"},
			{Tag: "min=10,max=50", Message: "Title has to be 10-50 characters long"},
		},
	},
	{
		Name: "price",
		Checks: []validator.Check{
			{Tag: "required", Message: "Cannot create funko pop without price!"},
			{Tag: "numeric", Message: "Price has to be numeric"},
		},
	},
	{
		Name: "description",
		Checks: []validator.Check{
			{Tag: "required", Message: "Cannot create funko pop without decription!"},
			{Tag: "min=10,max=250", Message: "Description has to be 10-250 characters long"},
		},
	},
	{
		Name: "quantity",
		Checks: []validator.Check{
			{Tag: "required", Message: "Cannot create funko pop without quantity!"},
			{Tag: "numeric", Message: "Quantity has to be numeric"},
		},
	},
}

// Edit rules apply per field only when the field key is present in the payload
var funkoPopEditRules = []validator.Field{
	{
		Name:     "title",
		Optional: true,
		Checks: []validator.Check{
			{Tag: "required", Message: "Cannot edit funko pop without title!"},
			{Tag: "min=10,max=50", Message: "Title has to be 10-50 characters long"},
		},
	},
	{
		Name:     "price",
		Optional: true,
		Checks: []validator.Check{
			{Tag: "required", Message: "Cannot edit funko pop without price!"},
			{Tag: "numeric", Message: "Price has to be numeric"},
		},
	},
	{
		Name:     "description",
		Optional: true,
		Checks: []validator.Check{
			{Tag: "required", Message: "Cannot edit funko pop without decription!"},
			{Tag: "min=10,max=250", Message: "Description has to be 10-250 characters long"},
		},
	},
	{
		Name:     "quantity",
		Optional: true,
		Checks: []validator.Check{
			{Tag: "required", Message: "Cannot edit funko pop without quantity!"},
			{Tag: "numeric", Message: "Quantity has to be numeric"},
		},
	},
}

type FunkoPopService interface {
	GetAll() ([]model.FunkoPop, error)
	GetByID(id string) (*model.FunkoPop, error)
	Create(payload map[string]interface{}) (*model.FunkoPop, error)
	Edit(id string, payload map[string]interface{}) (*model.FunkoPop, error)
	Delete(id string) (*model.FunkoPop, error)
}

type funkoPopService struct {
	popRepo repository.FunkoPopRepository
	wsHub   *ws.Hub
}

func NewFunkoPopService(popRepo repository.FunkoPopRepository, hub *ws.Hub) FunkoPopService {
	return &funkoPopService{
		popRepo: popRepo,
		wsHub:   hub,
	}
}

func (s *funkoPopService) GetAll() ([]model.FunkoPop, error) {
	return s.popRepo.FindAll()
}

func (s *funkoPopService) GetByID(id string) (*model.FunkoPop, error) {
	popID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	pop, err := s.popRepo.FindByID(popID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.FunkoPopNotFound()
		}
		return nil, err
	}
	return pop, nil
}

func (s *funkoPopService) Create(payload map[string]interface{}) (*model.FunkoPop, error) {
	if errs := validator.Validate(payload, funkoPopCreateRules); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	pop := &model.FunkoPop{
		Title:       trimmed(payload["title"]),
		Price:       asFloat(payload["price"]),
		Description: trimmed(payload["description"]),
		Quantity:    asInt(payload["quantity"]),
		InStock:     true,
		Reviews:     []model.Review{},
	}

	if err := s.popRepo.Create(pop); err != nil {
		return nil, err
	}

	s.wsHub.PublishEvent("funkopop_created", pop)
	return pop, nil
}

func (s *funkoPopService) Edit(id string, payload map[string]interface{}) (*model.FunkoPop, error) {
	if errs := validator.Validate(payload, funkoPopEditRules); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	popID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	pop, err := s.popRepo.FindByID(popID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.FunkoPopNotFound()
		}
		return nil, err
	}

	// Only supplied fields change
	if _, ok := payload["title"]; ok {
		pop.Title = trimmed(payload["title"])
	}
	if _, ok := payload["price"]; ok {
		pop.Price = asFloat(payload["price"])
	}
	if _, ok := payload["description"]; ok {
		pop.Description = trimmed(payload["description"])
	}
	if _, ok := payload["quantity"]; ok {
		pop.Quantity = asInt(payload["quantity"])
	}

	if err := s.popRepo.Update(pop); err != nil {
		return nil, err
	}

	s.wsHub.PublishEvent("funkopop_updated", pop)
	return pop, nil
}

// Delete is idempotent: deleting an id that matches nothing returns (nil, nil)
// and the handler answers 204. Reviews of a deleted funko pop are left behind.
func (s *funkoPopService) Delete(id string) (*model.FunkoPop, error) {
	popID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	pop, err := s.popRepo.FindByID(popID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := s.popRepo.Delete(popID); err != nil {
		return nil, err
	}

	s.wsHub.PublishEvent("funkopop_deleted", pop)
	return pop, nil
}

// parseID interprets the supplied identifier string as an identity key. A
// string that cannot be a key at all is a cast failure, distinct from a
// well-formed key that matches nothing.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.InvalidResourceID()
	}
	return parsed, nil
}

func trimmed(value interface{}) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

// asFloat accepts JSON numbers and numeric strings
func asFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	case int:
		return float64(v)
	}
	return 0
}

func asInt(value interface{}) int {
	return int(asFloat(value))
}
