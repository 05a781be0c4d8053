package importer

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/resume-import/internal/resume"
)

// DecodeRecord decodes a full resume record. Unparseable input yields
// ErrInvalidJSON and JSON that fails resume.Validate yields
// ErrInvalidResumeData. Once the shape is accepted decoding never fails:
// collection elements that are not objects are dropped and fields of the wrong
// type are left empty.
func DecodeRecord(raw []byte) (*resume.Data, error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if !resume.Validate(generic) {
		return nil, ErrInvalidResumeData
	}
	obj := generic.(map[string]any)

	data := resume.New()
	decodeLenient(obj["personalInfo"], &data.PersonalInfo)
	decodeLenient(obj["summary"], &data.Summary)
	decodeLenient(obj["sectionVisibility"], &data.SectionVisibility)

	data.Education = decodeList[resume.Education](obj["education"])
	data.Experience = decodeList[resume.Experience](obj["experience"])
	data.Skills = decodeList[resume.Skill](obj["skills"])
	data.Projects = decodeList[resume.Project](obj["projects"])
	data.Certifications = decodeList[resume.Certification](obj["certifications"])
	data.Languages = decodeList[resume.Language](obj["languages"])
	data.Interests = decodeList[resume.Interest](obj["interests"])
	data.Awards = decodeList[resume.Award](obj["awards"])
	data.Publications = decodeList[resume.Publication](obj["publications"])
	data.Volunteer = decodeList[resume.VolunteerExperience](obj["volunteer"])
	data.References = decodeList[resume.Reference](obj["references"])
	data.CustomSections = decodeList[resume.CustomSection](obj["customSections"])
	data.SectionOrder = decodeList[string](obj["sectionOrder"])

	return data.Normalize(), nil
}

// decodeList decodes every element of raw on its own. Struct elements must be
// JSON objects; anything else, and scalars that cannot be converted, are
// dropped. A non-array raw yields an empty list.
func decodeList[T any](raw any) []T {
	items, _ := raw.([]any)
	out := make([]T, 0, len(items))

	wantObject := reflect.TypeFor[T]().Kind() == reflect.Struct
	for _, item := range items {
		if item == nil {
			continue
		}
		if _, isObject := item.(map[string]any); wantObject != isObject {
			continue
		}

		var v T
		if !decodeLenient(item, &v) && !wantObject {
			continue
		}
		out = append(out, v)
	}
	return out
}

// decodeLenient decodes raw into result with mapstructure. Struct fields that do
// not fit keep their zero value; the report is false when anything was skipped.
func decodeLenient(raw, result any) bool {
	if raw == nil {
		return true
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return false
	}
	return decoder.Decode(raw) == nil
}
