// Package main provides the entry point for the portfolio website.
// It runs a web server using the Fiber framework that serves a public
// landing page, collects contact messages, and exposes an admin panel
// for managing profile content (skills, services, projects, experience,
// certifications) and site settings. The application uses gorm over a
// local sqlite file for data persistence.
package main
