package utils

import (
	"log"
	"time"

	"lms/database"
	"lms/models"
	webinarModels "lms/models/webinar"

	"github.com/robfig/cron/v3"
)

// InitializeWebinarScheduler sets up the webinar reminder scheduler
func InitializeWebinarScheduler() {
	log.Println("[WEBINAR-SCHEDULER] Initializing webinar reminder scheduler...")

	c := cron.New()

	// Run daily at 9 AM to remind attendees of tomorrow's webinars
	c.AddFunc("0 9 * * *", func() {
		log.Println("[WEBINAR-SCHEDULER] Running daily reminder check...")
		SendWebinarReminders()
	})

	c.Start()
	log.Println("[WEBINAR-SCHEDULER] Webinar scheduler started - runs daily at 9 AM")
}

// SendWebinarReminders emails registered attendees of webinars starting
// within the next day that have not been reminded yet
func SendWebinarReminders() {
	db := database.Database.Db
	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)

	var webinars []webinarModels.Webinar
	if err := db.Where("is_deleted = ? AND is_published = ?", false, true).
		Where("starts_at BETWEEN ? AND ?", now, tomorrow).
		Find(&webinars).Error; err != nil {
		log.Printf("[WEBINAR-SCHEDULER] Error fetching upcoming webinars: %v", err)
		return
	}

	log.Printf("[WEBINAR-SCHEDULER] Found %d webinars starting within a day", len(webinars))

	for _, wb := range webinars {
		var registrations []webinarModels.Registration
		if err := db.Where("webinar_id = ? AND status = ? AND reminder_sent = ? AND is_deleted = ?",
			wb.ID, webinarModels.StatusRegistered, false, false).
			Find(&registrations).Error; err != nil {
			log.Printf("[WEBINAR-SCHEDULER] Error fetching registrations for webinar %d: %v", wb.ID, err)
			continue
		}

		for _, reg := range registrations {
			var user models.User
			if err := db.Where("id = ? AND is_deleted = ?", reg.UserID, false).First(&user).Error; err != nil {
				continue
			}

			if err := SendWebinarReminderEmail(user.Name, user.Email, wb.Title, wb.StartsAt.Format("Mon, 02 Jan 2006 15:04")); err != nil {
				log.Printf("[WEBINAR-SCHEDULER] Failed to email %s: %v", user.Email, err)
				continue
			}

			reg.ReminderSent = true
			db.Save(&reg)
		}
	}
}
