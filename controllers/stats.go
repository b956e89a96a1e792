package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/home-services-backend/db"
	"github.com/meinhoongagan/home-services-backend/models"
	"github.com/meinhoongagan/home-services-backend/redis"
)

const statsCacheKey = "stats:overview"
const statsCacheTTL = 30 * time.Second

func todayRange() (time.Time, time.Time) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// GetStats returns platform-wide counters. The result is served from Redis
// for a short window when a cache is configured.
func GetStats(c *fiber.Ctx) error {
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, statsCacheKey).Result(); err == nil {
			c.Set("Content-Type", "application/json")
			return c.SendString(cached)
		}
	}

	var totalUsers, totalOrders, pendingAppointments, todayVisitors int64
	db.DB.Model(&models.User{}).Count(&totalUsers)
	db.DB.Model(&models.Order{}).Count(&totalOrders)
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusPending).
		Count(&pendingAppointments)

	todayStart, todayEnd := todayRange()
	db.DB.Model(&models.User{}).
		Where("last_login_time >= ? AND last_login_time < ?", todayStart, todayEnd).
		Count(&todayVisitors)

	var revenue float64
	db.DB.Model(&models.Order{}).Select("COALESCE(SUM(amount), 0)").Scan(&revenue)

	stats := fiber.Map{
		"total_users":          totalUsers,
		"total_orders":         totalOrders,
		"revenue":              revenue,
		"pending_appointments": pendingAppointments,
		"today_visitors":       todayVisitors,
	}

	if redis.Client != nil {
		if payload, err := json.Marshal(stats); err == nil {
			redis.Client.Set(redis.Ctx, statsCacheKey, payload, statsCacheTTL)
		}
	}
	return c.JSON(stats)
}

func GetTodayVisitors(c *fiber.Ctx) error {
	todayStart, todayEnd := todayRange()
	var count int64
	db.DB.Model(&models.User{}).
		Where("last_login_time >= ? AND last_login_time < ?", todayStart, todayEnd).
		Count(&count)
	return c.JSON(fiber.Map{"count": count})
}

func GetTodayOrders(c *fiber.Ctx) error {
	todayStart, todayEnd := todayRange()

	var orders []models.Order
	if err := db.DB.Where("created_at >= ? AND created_at < ?", todayStart, todayEnd).
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var revenue float64
	for _, o := range orders {
		revenue += o.Amount
	}
	return c.JSON(fiber.Map{
		"count":   len(orders),
		"revenue": revenue,
	})
}

// GetRevenueByMonth sums order amounts per calendar month of the requested
// year (default: current year), January through December.
func GetRevenueByMonth(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	if year == 0 {
		year = time.Now().Year()
	}

	var orders []models.Order
	if err := db.DB.Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	byMonth := make(map[time.Month]float64)
	for _, o := range orders {
		if o.CreatedAt.Year() == year {
			byMonth[o.CreatedAt.Month()] += o.Amount
		}
	}

	response := make([]fiber.Map, 0, 12)
	for m := time.January; m <= time.December; m++ {
		response = append(response, fiber.Map{
			"month":   m.String()[:3],
			"revenue": byMonth[m],
		})
	}
	return c.JSON(response)
}

// GetProviderWeeklyEarnings returns the provider's daily earnings over the
// last seven days, keyed by appointment time.
func GetProviderWeeklyEarnings(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider id",
		})
	}

	now := time.Now()
	startDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -6)
	endDay := startDay.AddDate(0, 0, 7)

	var appointments []models.Appointment
	if err := db.DB.Preload("Service").
		Where("provider_id = ? AND appointment_time >= ? AND appointment_time < ?",
			providerID, startDay, endDay).
		Order("appointment_time").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	daily := make([]float64, 7)
	for _, a := range appointments {
		day := int(a.AppointmentTime.Sub(startDay).Hours() / 24)
		if day < 0 || day > 6 {
			continue
		}
		price := a.Price
		if price == 0 {
			price = a.Service.Price * a.DurationHours
		}
		daily[day] += price
	}

	response := make([]fiber.Map, 0, 7)
	for i := 0; i < 7; i++ {
		date := startDay.AddDate(0, 0, i)
		response = append(response, fiber.Map{
			"name":   date.Weekday().String()[:3],
			"income": daily[i],
		})
	}
	return c.JSON(response)
}

// GetWeeklyOrders counts orders per day of the current Monday-anchored week.
func GetWeeklyOrders(c *fiber.Ctx) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	daysFromMonday := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -daysFromMonday)
	weekEnd := monday.AddDate(0, 0, 7)

	var orders []models.Order
	if err := db.DB.Where("created_at >= ? AND created_at < ?", monday, weekEnd).
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	daily := make([]int, 7)
	for _, o := range orders {
		day := int(o.CreatedAt.Sub(monday).Hours() / 24)
		if day >= 0 && day < 7 {
			daily[day]++
		}
	}

	response := make([]fiber.Map, 0, 7)
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i)
		response = append(response, fiber.Map{
			"name":  date.Weekday().String()[:3],
			"value": daily[i],
		})
	}
	return c.JSON(response)
}
