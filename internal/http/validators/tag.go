package validators

import (
	"regexp"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateCreateTagRequest trims the name in place and drops an empty color.
func ValidateCreateTagRequest(r *dto.CreateTagRequest) error {
	var c collector

	r.Name = c.text("name", "Tag name", r.Name, constants.TagNameMaxLength)

	if r.Color != nil {
		if *r.Color == "" {
			r.Color = nil
		} else if !hexColor.MatchString(*r.Color) {
			c.add("color", "Color must be a hex value like #FF5733")
		}
	}

	return c.err()
}
