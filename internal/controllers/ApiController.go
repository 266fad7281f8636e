package controllers

import (
	"net/http"
	"npd/internal/providers"
	"npd/internal/scraper"
	"npd/internal/scraper/interfaces"
	"npd/internal/services"
	"time"

	json "github.com/goccy/go-json"
)

type ApiController struct {
	logger  providers.Logger
	service services.StationServiceInterface
	history interfaces.HistoryReaderInterface
	cache   providers.CacheProviderInterface
	now     func() time.Time
}

func NewApiController(logger providers.Logger, service services.StationServiceInterface, history interfaces.HistoryReaderInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		history: history,
		cache:   cache,
		now:     time.Now,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// GetLatest serves the aggregate of every station's most recent snapshot.
func (ac *ApiController) GetLatest(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "latest", func() (any, error) {
		return ac.service.GetLatest(), nil
	})
}

// GetStation serves one station's most recent snapshot.
func (ac *ApiController) GetStation(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if ac.service.GetSnapshot(id) == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, "station:"+id, func() (any, error) {
		return ac.service.GetSnapshot(id), nil
	})
}

type stationInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GetStations serves the configured station list.
func (ac *ApiController) GetStations(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "stations", func() (any, error) {
		stations := ac.service.GetStations()
		infos := make([]stationInfo, 0, len(stations))
		for _, s := range stations {
			infos = append(infos, stationInfo{ID: s.ID, Name: s.Name, URL: s.URL})
		}
		return infos, nil
	})
}

// GetHistory serves the dedup log for a calendar day; the date defaults to
// today when omitted.
func (ac *ApiController) GetHistory(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = ac.now().Format(scraper.DateLayout)
	}
	if _, err := time.Parse(scraper.DateLayout, date); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "history:"+date, func() (any, error) {
		return ac.history.History(date), nil
	})
}
