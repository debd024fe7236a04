package handlers

import (
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/calgara/golftrack/geo"
	"github.com/calgara/golftrack/models"
)

// Courses returns all courses ordered by name.
func (h *Handler) Courses(c echo.Context) error {
	var courses []models.Course
	err := h.db.NewSelect().Model(&courses).
		OrderExpr("c.name ASC").
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, courses)
}

// CourseHoles returns a course's holes ordered by hole number.
func (h *Handler) CourseHoles(c echo.Context) error {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid course id")
	}

	var holes []models.Hole
	err = h.db.NewSelect().Model(&holes).
		Where("course_id = ?", courseID).
		OrderExpr("number ASC").
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(holes) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "course not found")
	}

	return c.JSON(http.StatusOK, holes)
}

type nearbyCourse struct {
	models.Course
	DistanceKm float64 `json:"distanceKm"`
}

// NearbyCourses returns courses within radiusKm of a point, closest
// first. A rough bounding box narrows the scan before the exact
// great-circle distance is applied.
func (h *Handler) NearbyCourses(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return echo.NewHTTPError(http.StatusBadRequest, "lat must be between -90 and 90")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		return echo.NewHTTPError(http.StatusBadRequest, "lng must be between -180 and 180")
	}

	radiusKm := 25.0
	if raw := c.QueryParam("radiusKm"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 || radiusKm > 500 {
			return echo.NewHTTPError(http.StatusBadRequest, "radiusKm must be between 0 and 500")
		}
	}

	// One degree of latitude is ~111km; longitude shrinks with cos(lat).
	latDelta := radiusKm / 111.0
	lngDelta := radiusKm / (111.0 * math.Max(math.Cos(lat*math.Pi/180), 0.01))

	var courses []models.Course
	err = h.db.NewSelect().Model(&courses).
		Where("lat BETWEEN ? AND ?", lat-latDelta, lat+latDelta).
		Where("lng BETWEEN ? AND ?", lng-lngDelta, lng+lngDelta).
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	nearby := make([]nearbyCourse, 0, len(courses))
	for _, course := range courses {
		km := geo.DistanceMeters(lat, lng, course.Lat, course.Lng) / 1000
		if km <= radiusKm {
			nearby = append(nearby, nearbyCourse{Course: course, DistanceKm: math.Round(km*100) / 100})
		}
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceKm < nearby[j].DistanceKm })

	return c.JSON(http.StatusOK, nearby)
}
