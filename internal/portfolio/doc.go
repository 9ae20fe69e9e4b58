// Package portfolio turns static portfolio content into a single HTML page.
//
// Compose arranges content into the fixed section layout (home, about,
// projects, skills, certifications, contact). A Renderer then writes the
// page, reading every referenced image from disk as it goes. Project, skill
// and certification cards all go through one card template.
package portfolio
