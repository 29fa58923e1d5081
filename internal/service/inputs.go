package service

import "strings"

// Request bodies as the handlers decode them. Optional text fields are pointers so
// a PATCH can tell "absent" from "set to empty".

type ModelInput struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Slug         string   `json:"slug" validate:"required,max=200,slug"`
	Category     string   `json:"category" validate:"required,oneof=ALL INTOWN UPCOMING"`
	Nationality  *string  `json:"nationality" validate:"omitempty,max=100"`
	ProfileImage *string  `json:"profileImage" validate:"omitempty,mediaurl"`
	Images       []string `json:"images" validate:"omitempty,max=100,dive,mediaurl"`
	Bio          *string  `json:"bio" validate:"omitempty,max=5000"`
	Height       *string  `json:"height" validate:"omitempty,max=50"`
	Measurements *string  `json:"measurements" validate:"omitempty,max=100"`
	Instagram    *string  `json:"instagram" validate:"omitempty,max=200"`
}

func (in *ModelInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Category = strings.ToUpper(strings.TrimSpace(in.Category))
	for _, p := range []**string{&in.Nationality, &in.ProfileImage, &in.Bio, &in.Height, &in.Measurements, &in.Instagram} {
		*p = blankToNil(*p)
	}
	in.Images = trimAll(in.Images)
}

// ModelPatch is a partial update. An explicit empty string clears an optional field.
type ModelPatch struct {
	Name         *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Slug         *string   `json:"slug" validate:"omitempty,min=1,max=200,slug"`
	Category     *string   `json:"category" validate:"omitempty,oneof=ALL INTOWN UPCOMING"`
	Nationality  *string   `json:"nationality" validate:"omitempty,max=100"`
	ProfileImage *string   `json:"profileImage" validate:"omitempty,len=0|mediaurl"`
	Images       *[]string `json:"images" validate:"omitempty,max=100,dive,mediaurl"`
	Bio          *string   `json:"bio" validate:"omitempty,max=5000"`
	Height       *string   `json:"height" validate:"omitempty,max=50"`
	Measurements *string   `json:"measurements" validate:"omitempty,max=100"`
	Instagram    *string   `json:"instagram" validate:"omitempty,max=200"`
}

func (p *ModelPatch) normalize() {
	for _, s := range []*string{p.Name, p.Slug, p.Nationality, p.ProfileImage, p.Bio, p.Height, p.Measurements, p.Instagram} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	if p.Category != nil {
		*p.Category = strings.ToUpper(strings.TrimSpace(*p.Category))
	}
	if p.Images != nil {
		*p.Images = trimAll(*p.Images)
	}
}

type ArchiveInput struct {
	Title   string   `json:"title" validate:"required,max=200"`
	Brand   *string  `json:"brand" validate:"omitempty,max=200"`
	Images  []string `json:"images" validate:"required,min=1,max=100,dive,mediaurl"`
	ModelID string   `json:"modelId" validate:"required,max=64"`
}

func (in *ArchiveInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Brand = blankToNil(in.Brand)
	in.Images = trimAll(in.Images)
	in.ModelID = strings.TrimSpace(in.ModelID)
}

type ArchivePatch struct {
	Title   *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Brand   *string   `json:"brand" validate:"omitempty,max=200"`
	Images  *[]string `json:"images" validate:"omitempty,min=1,max=100,dive,mediaurl"`
	ModelID *string   `json:"modelId" validate:"omitempty,min=1,max=64"`
}

func (p *ArchivePatch) normalize() {
	for _, s := range []*string{p.Title, p.Brand, p.ModelID} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	if p.Images != nil {
		*p.Images = trimAll(*p.Images)
	}
}

type ApplicationInput struct {
	Name      string   `json:"name" validate:"required,max=200"`
	Email     string   `json:"email" validate:"required,email"`
	Phone     string   `json:"phone" validate:"required,max=50"`
	Age       int      `json:"age" validate:"required,gt=0,lt=150"`
	Height    string   `json:"height" validate:"required,max=50"`
	Weight    string   `json:"weight" validate:"required,max=50"`
	Instagram *string  `json:"instagram" validate:"omitempty,max=200"`
	Portfolio []string `json:"portfolio" validate:"omitempty,max=50,dive,max=2048"`
	Message   *string  `json:"message" validate:"omitempty,max=5000"`
}

func (in *ApplicationInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Height = strings.TrimSpace(in.Height)
	in.Weight = strings.TrimSpace(in.Weight)
	in.Instagram = blankToNil(in.Instagram)
	in.Message = blankToNil(in.Message)
	in.Portfolio = trimAll(in.Portfolio)
}

type CastingInput struct {
	Company     string  `json:"company" validate:"required,max=200"`
	ContactName string  `json:"contactName" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required,max=50"`
	ProjectType string  `json:"projectType" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=10000"`
	Budget      *string `json:"budget" validate:"omitempty,max=100"`
	ShootDate   *string `json:"shootDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (in *CastingInput) normalize() {
	in.Company = strings.TrimSpace(in.Company)
	in.ContactName = strings.TrimSpace(in.ContactName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ProjectType = strings.TrimSpace(in.ProjectType)
	in.Description = strings.TrimSpace(in.Description)
	in.Budget = blankToNil(in.Budget)
	in.ShootDate = blankToNil(in.ShootDate)
}

type ApplicationStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING REVIEWED ACCEPTED REJECTED"`
}

type CastingStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONTACTED IN_PROGRESS COMPLETED CANCELLED"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=256"`
}

type AdminInput struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,max=72,password"`
	Name     *string `json:"name" validate:"omitempty,max=200"`
}

func (in *AdminInput) normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = blankToNil(in.Name)
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// trimAll trims every entry and never returns nil.
func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
