package resume

import "slices"

// Merge combines an imported record into an existing one and returns a new
// record. Non-empty incoming values win; empty incoming scalars and empty
// incoming collections keep whatever the existing record holds. Neither input
// is modified.
func Merge(existing, incoming *Data) *Data {
	if existing == nil {
		existing = New()
	}
	if incoming == nil {
		incoming = New()
	}

	merged := &Data{
		PersonalInfo:   mergePersonalInfo(existing.PersonalInfo, incoming.PersonalInfo),
		Summary:        pick(existing.Summary, incoming.Summary),
		Education:      pickSlice(existing.Education, incoming.Education),
		Experience:     pickSlice(existing.Experience, incoming.Experience),
		Skills:         pickSlice(existing.Skills, incoming.Skills),
		Projects:       pickSlice(existing.Projects, incoming.Projects),
		Certifications: pickSlice(existing.Certifications, incoming.Certifications),
		Languages:      pickSlice(existing.Languages, incoming.Languages),
		Interests:      pickSlice(existing.Interests, incoming.Interests),
		Awards:         pickSlice(existing.Awards, incoming.Awards),
		Publications:   pickSlice(existing.Publications, incoming.Publications),
		Volunteer:      pickSlice(existing.Volunteer, incoming.Volunteer),
		References:     pickSlice(existing.References, incoming.References),
		CustomSections: pickSlice(existing.CustomSections, incoming.CustomSections),
		SectionOrder:   pickSlice(existing.SectionOrder, incoming.SectionOrder),
	}

	// An all-false incoming block keeps the existing visibility.
	merged.SectionVisibility = existing.SectionVisibility
	if incoming.SectionVisibility != (SectionVisibility{}) {
		merged.SectionVisibility = incoming.SectionVisibility
	}

	merged.normalize()
	return merged
}

func mergePersonalInfo(existing, incoming PersonalInfo) PersonalInfo {
	return PersonalInfo{
		FirstName:  pick(existing.FirstName, incoming.FirstName),
		LastName:   pick(existing.LastName, incoming.LastName),
		Email:      pick(existing.Email, incoming.Email),
		Phone:      pick(existing.Phone, incoming.Phone),
		LinkedIn:   pick(existing.LinkedIn, incoming.LinkedIn),
		GitHub:     pick(existing.GitHub, incoming.GitHub),
		Address:    pick(existing.Address, incoming.Address),
		Title:      pick(existing.Title, incoming.Title),
		Website:    pick(existing.Website, incoming.Website),
		Portfolio:  pick(existing.Portfolio, incoming.Portfolio),
		Twitter:    pick(existing.Twitter, incoming.Twitter),
		Photo:      pick(existing.Photo, incoming.Photo),
		ShowPhoto:  existing.ShowPhoto || incoming.ShowPhoto,
		PhotoShape: pick(existing.PhotoShape, incoming.PhotoShape),
		PhotoSize:  pick(existing.PhotoSize, incoming.PhotoSize),
	}
}

func pick(existing, incoming string) string {
	if incoming != "" {
		return incoming
	}
	return existing
}

func pickSlice[T any](existing, incoming []T) []T {
	if len(incoming) > 0 {
		return slices.Clone(incoming)
	}
	return slices.Clone(existing)
}
