// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformGupy is the Gupy ATS platform, common in the Brazilian market
	PlatformGupy Platform = "gupy"
	// PlatformVagas is the Vagas.com job board
	PlatformVagas Platform = "vagas"
	// PlatformCatho is the Catho job board
	PlatformCatho Platform = "catho"
	// PlatformInfoJobs is the InfoJobs job board
	PlatformInfoJobs Platform = "infojobs"
	// PlatformLinkedIn is the LinkedIn jobs page
	PlatformLinkedIn Platform = "linkedin"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "gupy.io") {
		return PlatformGupy
	}

	if strings.Contains(host, "vagas.com") {
		return PlatformVagas
	}

	if strings.Contains(host, "catho.com") {
		return PlatformCatho
	}

	if strings.Contains(host, "infojobs.com") {
		return PlatformInfoJobs
	}

	if strings.Contains(host, "linkedin.com") {
		return PlatformLinkedIn
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGupy:
		return []string{
			"[data-testid='text-section']",
			".job-description",
			".description",
			"main",
		}
	case PlatformVagas:
		return []string{
			".job-description__text",
			".vaga-descricao",
			"#job-description",
			"main",
		}
	case PlatformCatho:
		return []string{
			".job-offer-description",
			".descricao-vaga",
			"main",
		}
	case PlatformInfoJobs:
		return []string{
			".js_vacancy-description",
			".vacancy-description",
			"main",
		}
	case PlatformLinkedIn:
		return []string{
			".description__text",
			".show-more-less-html__markup",
			".jobs-description",
			"main",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		"form",
		".application-form",
		".apply-button-container",
		".social-share",
		".share-buttons",
		".cookie-banner",
		".cookie-consent",
		".similar-jobs",
		".related-jobs",
	}

	switch platform {
	case PlatformGupy:
		return append(common,
			"[data-testid='button-apply']",
			".job-application",
		)
	case PlatformVagas:
		return append(common,
			".candidatura",
			".vaga-acoes",
		)
	case PlatformLinkedIn:
		return append(common,
			".top-card-layout__cta-container",
			".sign-in-modal",
		)
	default:
		return common
	}
}
