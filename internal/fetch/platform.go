package fetch

import (
	"net/url"
	"strings"
)

// Platform is a job board whose markup is known.
type Platform string

const (
	PlatformGreenhouse      Platform = "greenhouse"
	PlatformLever           Platform = "lever"
	PlatformWorkday         Platform = "workday"
	PlatformAshby           Platform = "ashby"
	PlatformSmartRecruiters Platform = "smartrecruiters"
	PlatformUnknown         Platform = "unknown"
)

type boardMarkup struct {
	hosts   []string
	content []string
	noise   []string
}

var boards = map[Platform]boardMarkup{
	PlatformGreenhouse: {
		hosts:   []string{"greenhouse.io"},
		content: []string{".job__description.body", ".job__description", "#content", ".job-post-container"},
		noise:   []string{".application--wrapper", ".voluntary-self-id", "#usa_self_id_section", ".post-apply"},
	},
	PlatformLever: {
		hosts:   []string{"lever.co"},
		content: []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:   []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	PlatformWorkday: {
		hosts:   []string{"workday.com", "myworkdayjobs.com"},
		content: []string{"[data-automation-id='jobPostingDescription']", "[data-automation-id='jobDescription']", ".job-description"},
		noise:   []string{"[data-automation-id='applyButton']", ".application-section"},
	},
	PlatformAshby: {
		hosts:   []string{"ashbyhq.com"},
		content: []string{"[class*='_descriptionText']", "[class*='_description']", "main"},
		noise:   []string{"[class*='_applicationForm']"},
	},
	PlatformSmartRecruiters: {
		hosts:   []string{"smartrecruiters.com"},
		content: []string{".job-sections", "[itemprop='description']", "main"},
		noise:   []string{".job-apply", ".js-apply"},
	},
}

// commonNoise is removed on every board.
var commonNoise = []string{
	"form", "#application-form", ".application-form", ".apply-button-container",
	".eeo-statement", ".eeo-section", ".legal-disclosure", ".self-identification",
	".social-share", ".share-buttons", ".cookie-banner", ".cookie-consent", ".gdpr-notice",
}

// genericContent is tried on pages from unknown boards.
var genericContent = []string{
	".job-description", "#job-description", ".job-content", ".posting-content",
	".job-details", "[data-testid='job-description']", "main", "article", ".content", "#content",
}

// DetectPlatform identifies the job board from a URL's host.
func DetectPlatform(rawURL string) Platform {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Hostname())
	for platform, board := range boards {
		for _, h := range board.hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return platform
			}
		}
	}
	return PlatformUnknown
}

// ContentSelectors returns the description selectors for a platform, most
// specific first, ending with the generic ones.
func ContentSelectors(p Platform) []string {
	board, ok := boards[p]
	if !ok {
		return append([]string{}, genericContent...)
	}
	return append(append([]string{}, board.content...), genericContent...)
}

// NoiseSelectors returns elements to strip before extracting text.
func NoiseSelectors(p Platform) []string {
	return append(append([]string{}, commonNoise...), boards[p].noise...)
}
