package lead

// ===============================
// Service Catalogue
// ===============================

type Service string

const (
	ServiceWebDevelopment Service = "Web Development"
	ServiceAppDevelopment Service = "App Development"
	ServiceVideoEditing   Service = "Video Editing"
	ServiceLogoPoster     Service = "Logo & Poster Design"
)

func AllServices() []Service {
	return []Service{
		ServiceWebDevelopment,
		ServiceAppDevelopment,
		ServiceVideoEditing,
		ServiceLogoPoster,
	}
}

func IsValidService(s string) bool {
	switch Service(s) {
	case ServiceWebDevelopment, ServiceAppDevelopment, ServiceVideoEditing, ServiceLogoPoster:
		return true
	}
	return false
}
