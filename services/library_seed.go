package services

import "github.com/siteguard-sec/siteguard/database/models"

// DefaultControlLibrary is the canonical control catalog every scoring
// checklist references. Seeding runs out of band (CLI seed command); a
// checklist name missing from this catalog is a broken seed mapping and
// surfaces as a library lookup failure at scoring time.
func DefaultControlLibrary() []models.ControlLibraryEntry {
	entry := func(name, category string, baseWeight int, reduction float64) models.ControlLibraryEntry {
		return models.ControlLibraryEntry{Name: name, Category: category, BaseWeight: baseWeight, ReductionPercentage: reduction}
	}

	return []models.ControlLibraryEntry{
		// shared
		entry("Access Control System", "access", 3, 25),
		entry("CCTV Surveillance System", "surveillance", 3, 20),
		entry("Perimeter Fencing", "perimeter", 2, 15),
		entry("Security Awareness Training", "people", 2, 10),

		// office
		entry("Visitor Management System", "access", 2, 15),
		entry("Security Guard Coverage", "people", 3, 20),
		entry("Panic Buttons", "response", 2, 10),
		entry("Active Shooter Response Training", "people", 3, 15),
		entry("Server Room Access Control", "access", 3, 25),
		entry("Secure Document Destruction", "information", 1, 10),
		entry("Badge Access Logging", "access", 2, 10),
		entry("Workstation Screen Locking", "information", 1, 10),
		entry("Clean Desk Policy", "information", 1, 5),

		// datacenter
		entry("Redundant Power Feeds", "infrastructure", 3, 30),
		entry("Backup Generator Capacity", "infrastructure", 3, 30),
		entry("Redundant Cooling System", "infrastructure", 3, 25),
		entry("Fire Suppression System", "infrastructure", 3, 30),
		entry("UPS Battery Monitoring", "infrastructure", 2, 15),
		entry("Environmental Monitoring", "infrastructure", 2, 15),
		entry("Biometric Access Control", "access", 3, 30),
		entry("24/7 Security Staffing", "people", 3, 25),
		entry("Mantrap Entry Portal", "access", 2, 20),
		entry("Cage and Rack Locking", "access", 2, 15),
		entry("Visitor Escort Policy", "access", 2, 10),
		entry("Asset Inventory Management", "information", 2, 10),

		// manufacturing
		entry("Vehicle Gate Control", "perimeter", 2, 15),
		entry("Production Area Access Control", "access", 3, 25),
		entry("Inventory Tracking System", "information", 2, 15),
		entry("Hazardous Material Storage Security", "safety", 3, 25),
		entry("Lone Worker Alarm System", "safety", 2, 15),

		// retail
		entry("Alarm Monitoring Service", "response", 2, 20),
		entry("Employee Theft Awareness Training", "people", 2, 10),
		entry("Electronic Article Surveillance", "loss-prevention", 3, 25),
		entry("POS Camera Coverage", "surveillance", 2, 15),
		entry("Cash Management Safe", "loss-prevention", 3, 25),

		// warehouse
		entry("Dock Door Alarm Sensors", "perimeter", 2, 20),
		entry("Inventory Cage for High-Value Goods", "loss-prevention", 3, 25),
		entry("Driver Check-In Procedure", "access", 2, 15),
		entry("After-Hours Alarm System", "response", 3, 25),

		// executive protection
		entry("Residential Security System", "residential", 3, 25),
		entry("Digital Privacy Monitoring", "information", 2, 15),
		entry("Family Security Awareness Training", "people", 2, 10),
		entry("Personal Protection Detail", "people", 3, 35),
		entry("Secure Transportation Program", "transport", 3, 30),
		entry("Travel Security Briefings", "people", 2, 15),
	}
}

// DefaultThreatLibrary is the canonical threat catalog scenario generation
// validates its output against.
func DefaultThreatLibrary() []models.ThreatLibraryEntry {
	entry := func(name, category string) models.ThreatLibraryEntry {
		return models.ThreatLibraryEntry{Name: name, Category: category}
	}

	return []models.ThreatLibraryEntry{
		entry("Theft", "criminal"),
		entry("Burglary", "criminal"),
		entry("Intrusion", "criminal"),
		entry("Kidnapping", "targeted"),
		entry("Burglary / Home Invasion", "targeted"),
		entry("Stalking / Fixated Person", "targeted"),
		entry("Ambush / Vehicle Attack", "targeted"),
		entry("Workplace Violence", "people"),
		entry("Sabotage", "insider"),
	}
}
