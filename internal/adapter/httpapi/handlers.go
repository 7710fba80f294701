package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carloworks/covid-data-api/internal/domain"
)

const latestKey = "latest"

type handler struct {
	store  Store
	opts   Options
	logger *slog.Logger
}

func (h *handler) registerRoutes(router *gin.Engine) {
	router.GET("/", h.banner)
	router.GET("/covid/:country", h.covidCountry)
	router.GET("/covid/:country/:province", h.covidProvince)
	router.GET("/vaccine/:country", h.vaccineCountry)
	router.GET("/news", h.news)
}

// entityView is a country response with the province list stripped.
type entityView struct {
	Country string              `json:"country"`
	ISO     string              `json:"iso"`
	Data    []*domain.DayRecord `json:"data"`
}

// pagedView is one page of a country's full series, provinces included.
type pagedView struct {
	Country   string                   `json:"country"`
	ISO       string                   `json:"iso"`
	Data      []*domain.DayRecord      `json:"data"`
	Provinces []*domain.ProvinceSeries `json:"provinces"`
	More      bool                     `json:"more"`
}

func (h *handler) banner(c *gin.Context) {
	c.String(http.StatusOK, "COVID-19 data API. Routes: /covid/:country, /covid/:country/:province, /vaccine/:country, /news")
}

func (h *handler) covidCountry(c *gin.Context) {
	country := c.Param("country")
	if country == latestKey {
		data, mtime, err := h.store.CaseLatestBytes()
		if err != nil {
			h.notFoundOrError(c, err)
			return
		}
		h.setFreshness(c, h.opts.CovidPublishHour, mtime)
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
		return
	}

	entity, mtime, ok := h.loadCaseEntity(c, country)
	if !ok {
		return
	}
	h.setFreshness(c, h.opts.CovidPublishHour, mtime)
	c.JSON(http.StatusOK, entityView{Country: entity.Country, ISO: entity.ISO, Data: entity.Data})
}

func (h *handler) covidProvince(c *gin.Context) {
	country := c.Param("country")
	province := c.Param("province")

	if province == "all" {
		h.covidAllProvinces(c, country)
		return
	}

	entity, mtime, ok := h.loadCaseEntity(c, country)
	if !ok {
		return
	}
	for _, p := range entity.Provinces {
		if strings.EqualFold(p.Province, province) || strings.EqualFold(p.ISO, province) {
			h.setFreshness(c, h.opts.CovidPublishHour, mtime)
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "province not found"})
}

// covidAllProvinces serves the full entity file. Without a limit the file
// bytes go out verbatim; with one, the day series of the country and of every
// province are cut to the same page window.
func (h *handler) covidAllProvinces(c *gin.Context, country string) {
	limitParam := c.Query("limit")
	if limitParam == "" {
		data, mtime, err := h.store.CaseEntityBytes(country)
		if err != nil {
			h.notFoundOrError(c, err)
			return
		}
		h.setFreshness(c, h.opts.CovidPublishHour, mtime)
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
		return
	}

	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	page := 0
	if p := c.Query("page"); p != "" {
		page, err = strconv.Atoi(p)
		if err != nil || page < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
	}

	entity, mtime, ok := h.loadCaseEntity(c, country)
	if !ok {
		return
	}

	start, end := limit*page, limit*(page+1)
	view := pagedView{
		Country:   entity.Country,
		ISO:       entity.ISO,
		Data:      pageOf(entity.Data, start, end),
		Provinces: make([]*domain.ProvinceSeries, 0, len(entity.Provinces)),
		More:      len(entity.Data) > end,
	}
	for _, p := range entity.Provinces {
		view.Provinces = append(view.Provinces, &domain.ProvinceSeries{
			Province: p.Province,
			ISO:      p.ISO,
			Data:     pageOf(p.Data, start, end),
		})
	}

	h.setFreshness(c, h.opts.CovidPublishHour, mtime)
	c.JSON(http.StatusOK, view)
}

func (h *handler) vaccineCountry(c *gin.Context) {
	country := c.Param("country")

	var (
		data  []byte
		mtime time.Time
		err   error
	)
	if country == latestKey {
		data, mtime, err = h.store.VaccineLatestBytes()
	} else {
		data, mtime, err = h.store.VaccineEntityBytes(country)
	}
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}
	h.setFreshness(c, h.opts.VaccinePublishHour, mtime)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *handler) news(c *gin.Context) {
	data, mtime, err := h.store.NewsBytes()
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}
	h.setCacheHeaders(c, domain.MaxAgeSince(mtime, time.Hour), mtime)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *handler) loadCaseEntity(c *gin.Context, country string) (*domain.EntitySeries, time.Time, bool) {
	data, mtime, err := h.store.CaseEntityBytes(country)
	if err != nil {
		h.notFoundOrError(c, err)
		return nil, time.Time{}, false
	}
	var entity domain.EntitySeries
	if err := json.Unmarshal(data, &entity); err != nil {
		h.logger.Error("decode case file failed", "country", country, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "corrupt data file"})
		return nil, time.Time{}, false
	}
	return &entity, mtime, true
}

func (h *handler) setFreshness(c *gin.Context, publishHour int, mtime time.Time) {
	h.setCacheHeaders(c, domain.MaxAgeUntilHour(publishHour, h.opts.MaxAgeMargin), mtime)
}

func (h *handler) setCacheHeaders(c *gin.Context, maxAge int, mtime time.Time) {
	if maxAge < 0 {
		maxAge = 0
	}
	c.Header("Cache-Control", "max-age="+strconv.Itoa(maxAge)+", must-revalidate")
	if !mtime.IsZero() {
		c.Header("Last-Modified", mtime.UTC().Format(http.TimeFormat))
	}
}

func (h *handler) notFoundOrError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data for this query"})
		return
	}
	h.logger.Error("read data file failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func pageOf(data []*domain.DayRecord, start, end int) []*domain.DayRecord {
	if start > len(data) {
		start = len(data)
	}
	if end > len(data) {
		end = len(data)
	}
	return data[start:end]
}
