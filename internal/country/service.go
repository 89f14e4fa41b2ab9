package country

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"collectapi/internal/platform/cache"
)

// DefaultCode is used when every detection method comes up empty.
const DefaultCode = "ZA"

const cacheTTL = 24 * time.Hour

// Geolocation services tried in order. Each takes the client IP.
var defaultGeoURLs = []string{
	"https://ipapi.co/%s/json/",
	"http://ip-api.com/json/%s",
	"https://ipinfo.io/%s/json",
}

type Service struct {
	httpClient *http.Client
	geoURLs    []string
	cache      *cache.TTL[DetectionResult]
	now        func() time.Time
}

func NewService() *Service {
	return &Service{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		geoURLs:    defaultGeoURLs,
		cache:      cache.NewTTL[DetectionResult](cacheTTL, nil),
		now:        time.Now,
	}
}

// geoReply covers the field names the different services use.
type geoReply struct {
	CountryCode  string `json:"country_code"`
	CountryCode2 string `json:"countryCode"`
	Country      string `json:"country"`
}

func (g geoReply) code() string {
	for _, c := range []string{g.CountryCode, g.CountryCode2, g.Country} {
		if len(c) == 2 {
			return strings.ToUpper(c)
		}
	}
	return ""
}

// Detect resolves the caller's country, by IP geolocation first and the
// Accept-Language header second. Results are cached per IP for a day.
func (s *Service) Detect(ctx context.Context, clientIP, acceptLanguage string) DetectionResult {
	if cached, ok := s.cache.Get(clientIP); ok {
		return cached
	}

	result, ok := s.detectByIP(ctx, clientIP)
	if !ok {
		result, ok = detectByLanguage(acceptLanguage)
	}
	if !ok {
		result = DetectionResult{Country: InfoByCode(DefaultCode), Confidence: 0.1, Method: "default"}
	}
	result.Timestamp = s.now().UTC()

	s.cache.Set(clientIP, result)
	return result
}

func (s *Service) detectByIP(ctx context.Context, clientIP string) (DetectionResult, bool) {
	if clientIP == "" {
		return DetectionResult{}, false
	}

	for _, urlTemplate := range s.geoURLs {
		url := fmt.Sprintf(urlTemplate, clientIP)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			continue
		}
		resp, err := s.httpClient.Do(req)
		if err != nil {
			slog.Warn("geolocation service failed", "url", url, "error", err)
			continue
		}

		var reply geoReply
		decodeErr := json.NewDecoder(resp.Body).Decode(&reply)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || decodeErr != nil {
			continue
		}

		if code := reply.code(); code != "" {
			return DetectionResult{
				Country:    InfoByCode(code),
				Confidence: 0.9,
				Method:     "ip",
			}, true
		}
	}
	return DetectionResult{}, false
}

var languageTag = regexp.MustCompile(`^[a-z]{2}-([A-Z]{2})`)

// detectByLanguage pulls a region out of the first Accept-Language tag,
// e.g. "en-ZA,en;q=0.9" yields ZA.
func detectByLanguage(acceptLanguage string) (DetectionResult, bool) {
	first := strings.TrimSpace(strings.Split(acceptLanguage, ",")[0])
	m := languageTag.FindStringSubmatch(first)
	if m == nil {
		return DetectionResult{}, false
	}
	return DetectionResult{
		Country:    InfoByCode(m[1]),
		Confidence: 0.5,
		Method:     "language",
	}, true
}
