package seed

// DefaultTaxonomy is the full production catalog fixture: 11 services, their
// category lists, and one batch of brands/models/products per product domain.

const imageBase = "https://cdn.integrators.in/catalog"

func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		Services: []ServiceSpec{
			{Name: "CCTV", Icon: "videocam", Description: "Complete CCTV surveillance solutions including IP and analog systems",
				Categories: []string{"IP Cameras", "PTZ Cameras", "WiFi Cameras", "Bullet Cameras", "Dome Cameras", "DVR Systems", "CCTV Accessories", "IP HD Systems", "Analog HD Systems"}},
			{Name: "Computers", Icon: "desktop", Description: "Desktop computers, laptops, and computer accessories",
				Categories: []string{"Desktop PC", "Printers", "Monitors", "Computer Accessories"}},
			{Name: "Networking", Icon: "wifi", Description: "Network equipment including switches, routers, and cables",
				Categories: []string{"Network Switches", "Routers", "Cables", "PoE Switches"}},
			{Name: "Access Controls", Icon: "shield-checkmark", Description: "Access control systems including biometrics and electronic locks",
				Categories: []string{"Biometrics", "Door Locks", "Face Recognition Machines", "Electronic Locks", "GPS Devices for Vehicles"}},
			{Name: "Fire Alarms", Icon: "flame", Description: "Fire alarm systems and safety equipment",
				Categories: []string{"Fire Panels", "Smoke Detectors", "Conventional Fire Alarm Systems", "Analogue Addressable Fire Alarm Systems"}},
			{Name: "Video Door Phones", Icon: "call", Description: "Video door phone systems for residential and commercial use",
				Categories: []string{"Video Door Phones", "Analogue Video Door Phones", "IP Video Door Phones"}},
			{Name: "Solar Power", Icon: "sunny", Description: "Solar power solutions and inverters",
				Categories: []string{"Solar Inverters", "Solar Batteries", "Solar Cables"}},
			{Name: "Audio Video", Icon: "musical-notes", Description: "Audio and video equipment",
				Categories: []string{"Speakers", "Amplifiers"}},
			{Name: "Power Supply", Icon: "battery", Description: "Power supply solutions including adapters, UPS, and power supplies",
				Categories: []string{"Adapters", "UPS", "Power Supplies"}},
			{Name: "Accessories", Icon: "construct", Description: "Various accessories for security and technology systems",
				Categories: []string{"Connectors", "Brackets", "Storage", "CCTV Accessories", "EPABX Accessories"}},
			{Name: "EPABX & Intercom", Icon: "call", Description: "EPABX and intercom systems",
				Categories: []string{"EPABX & Intercom"}},
		},
		Batches: []Batch{
			{
				Name: "IP Cameras", Service: "CCTV", Category: "IP Cameras",
				Brands: []BrandSpec{
					{Name: "Prama", Models: []ModelSpec{
						{Name: "Varifocal Zoom Lens IR Camera", Image: imageBase + "/cctv/prama-varifocal.jpg", Product: &ProductSpec{
							Name:        "Prama Varifocal Zoom Lens IR Camera",
							Description: "High-quality IP camera with varifocal zoom lens (2.8-12mm) and powerful IR night vision up to 30 meters. Perfect for outdoor surveillance with adjustable focal length for flexible installation.",
							Price:       "8500", OriginalPrice: "10000", InStock: true, Rating: 4.5, Reviews: 120,
							Specs: map[string]string{"Resolution": "4MP (2688 × 1520)", "Lens": "Varifocal 2.8-12mm", "Night Vision": "Up to 30m IR Range", "Weatherproof": "IP67", "Power Supply": "12VDC / PoE", "Compression": "H.265+", "Warranty": "3 Years"},
						}},
					}},
					{Name: "HD Crystal", Models: []ModelSpec{
						{Name: "4MP IP Dome Network Camera", Image: imageBase + "/cctv/hdcrystal-dome.jpg", Product: &ProductSpec{
							Name:        "HD Crystal 4MP IP Dome Network Camera",
							Description: "Indoor IP dome camera with 4MP resolution, built-in mic and smart motion detection.",
							Price:       "4200", OriginalPrice: "5000", InStock: true, Rating: 4.2, Reviews: 64,
							Specs: map[string]string{"Resolution": "4MP", "Lens": "Fixed 3.6mm", "Audio": "Built-in Mic", "Compression": "H.265"},
						}},
					}},
				},
			},
			{
				Name: "PTZ Cameras", Service: "CCTV", Category: "PTZ Cameras",
				Brands: []BrandSpec{
					{Name: "Hikvision", Models: []ModelSpec{
						{Name: "Outdoor IR Speed Dome PTZ Camera", Image: imageBase + "/cctv/hik-ptz.jpg", Product: &ProductSpec{
							Name:        "Hikvision Outdoor IR Speed Dome PTZ Camera",
							Description: "Professional PTZ camera with 25x optical zoom, 360-degree continuous rotation and 100m IR range for large-area surveillance.",
							Price:       "28500", OriginalPrice: "32000", InStock: true, Rating: 4.7, Reviews: 89,
							Specs: map[string]string{"Resolution": "2MP Full HD", "Zoom": "25x Optical", "Rotation": "360° Pan / 90° Tilt", "Night Vision": "100m IR", "Weatherproof": "IP66"},
						}},
					}},
					{Name: "SecureEye", Models: []ModelSpec{
						{Name: "Mini PTZ WiFi Camera", Image: imageBase + "/cctv/secureeye-ptz.jpg", Product: &ProductSpec{
							Name:        "SecureEye Mini PTZ WiFi Camera",
							Description: "Compact pan-tilt WiFi camera with two-way audio and mobile app control.",
							Price:       "3200", InStock: true, Rating: 4.0, Reviews: 142,
							Specs: map[string]string{"Resolution": "2MP", "Connectivity": "WiFi 2.4GHz", "Audio": "Two-way", "Storage": "MicroSD up to 128GB"},
						}},
					}},
				},
			},
			{
				Name: "WiFi Cameras", Service: "CCTV", Category: "WiFi Cameras",
				Brands: []BrandSpec{
					{Name: "CP Plus", Models: []ModelSpec{
						{Name: "Ezykam Smart WiFi Camera", Image: imageBase + "/cctv/cpplus-ezykam.jpg", Product: &ProductSpec{
							Name:        "CP Plus Ezykam Smart WiFi Camera",
							Description: "Smart home WiFi camera with motion alerts, night vision and cloud recording support.",
							Price:       "2400", OriginalPrice: "2990", InStock: true, Rating: 4.3, Reviews: 310,
							Specs: map[string]string{"Resolution": "3MP", "Night Vision": "10m", "Alerts": "Motion Detection", "App": "CP Plus Ezykam"},
						}},
					}},
					{Name: "EZVIZ", Models: []ModelSpec{
						{Name: "C6N Indoor Pan Tilt Camera", Image: imageBase + "/cctv/ezviz-c6n.jpg", Product: &ProductSpec{
							Name:        "EZVIZ C6N Indoor Pan Tilt Camera",
							Description: "Indoor smart WiFi camera with 360-degree coverage and privacy shutter.",
							Price:       "2800", InStock: true, Rating: 4.4, Reviews: 275,
							Specs: map[string]string{"Resolution": "2MP 1080p", "Pan": "340°", "Tilt": "55°", "Night Vision": "10m"},
						}},
					}},
				},
			},
			{
				Name: "Bullet Cameras", Service: "CCTV", Category: "Bullet Cameras",
				Brands: []BrandSpec{
					{Name: "Dahua", Models: []ModelSpec{
						{Name: "2MP HDCVI IR Bullet Camera", Image: imageBase + "/cctv/dahua-bullet.jpg", Product: &ProductSpec{
							Name:        "Dahua 2MP HDCVI IR Bullet Camera",
							Description: "Weatherproof bullet camera with smart IR and wide dynamic range for day/night surveillance.",
							Price:       "1850", OriginalPrice: "2200", InStock: true, Rating: 4.1, Reviews: 198,
							Specs: map[string]string{"Resolution": "2MP", "Night Vision": "30m Smart IR", "Weatherproof": "IP67", "Output": "HDCVI/AHD/TVI/CVBS"},
						}},
					}},
					{Name: "Impact", Models: []ModelSpec{
						{Name: "5MP Night Color Bullet Camera", Image: imageBase + "/cctv/impact-bullet.jpg", Product: &ProductSpec{
							Name:        "Impact 5MP Night Color Bullet Camera",
							Description: "Full-color night vision bullet camera with built-in warm LED illumination.",
							Price:       "2650", InStock: true, Rating: 4.2, Reviews: 77,
							Specs: map[string]string{"Resolution": "5MP", "Night Vision": "Full Color 20m", "Weatherproof": "IP66"},
						}},
					}},
				},
			},
			{
				Name: "DVR Systems", Service: "CCTV", Category: "DVR Systems",
				Brands: []BrandSpec{
					{Name: "CP Plus", Models: []ModelSpec{
						{Name: "8 Channel Cosmic Full HD DVR", Image: imageBase + "/cctv/cpplus-dvr8.jpg", Product: &ProductSpec{
							Name:        "CP Plus 8 Channel Cosmic Full HD DVR",
							Description: "8-channel digital video recorder supporting 1080p lite recording on all channels with mobile viewing.",
							Price:       "4800", OriginalPrice: "5600", InStock: true, Rating: 4.3, Reviews: 231,
							Specs: map[string]string{"Channels": "8", "Recording": "1080p Lite", "Storage": "1 SATA up to 8TB", "Playback": "Synchronous 8ch"},
						}},
					}},
					{Name: "Hi-Focus", Models: []ModelSpec{
						{Name: "4 Channel 5-in-1 DVR", Image: imageBase + "/cctv/hifocus-dvr4.jpg", Product: &ProductSpec{
							Name:        "Hi-Focus 4 Channel 5-in-1 DVR",
							Description: "Entry-level 4-channel DVR compatible with AHD, TVI, CVI, CVBS and IP cameras.",
							Price:       "2900", InStock: true, Rating: 4.0, Reviews: 115,
							Specs: map[string]string{"Channels": "4", "Modes": "AHD/TVI/CVI/CVBS/IP", "Storage": "1 SATA up to 6TB"},
						}},
					}},
					{Name: "Dahua", Models: []ModelSpec{
						{Name: "16 Channel Penta-brid DVR", Image: imageBase + "/cctv/dahua-dvr16.jpg", Product: &ProductSpec{
							Name:        "Dahua 16 Channel Penta-brid DVR",
							Description: "Professional 16-channel penta-brid recorder with AI coding and perimeter protection.",
							Price:       "11200", OriginalPrice: "12990", InStock: true, Rating: 4.6, Reviews: 58,
							Specs: map[string]string{"Channels": "16", "AI": "SMD Plus", "Storage": "2 SATA up to 16TB", "Compression": "H.265+"},
						}},
					}},
				},
			},
			{
				Name: "IP HD Systems", Service: "CCTV", Category: "IP HD Systems",
				Brands: []BrandSpec{
					{Name: "Prama", Models: []ModelSpec{
						{Name: "4 Channel NVR Combo Kit", Image: imageBase + "/cctv/prama-nvr-kit.jpg", Product: &ProductSpec{
							Name:        "Prama 4 Channel NVR Combo Kit",
							Description: "Complete IP HD surveillance kit: 4-channel NVR, four 2MP IP cameras, cables and power supply.",
							Price:       "18500", OriginalPrice: "21500", InStock: true, Rating: 4.4, Reviews: 43,
							Specs: map[string]string{"Channels": "4 PoE", "Cameras": "4 x 2MP IP", "Storage": "Up to 6TB", "Warranty": "2 Years"},
						}},
					}},
					{Name: "Trueview", Models: []ModelSpec{
						{Name: "8 Channel IP HD Combo", Image: imageBase + "/cctv/trueview-ip8.jpg", Product: &ProductSpec{
							Name:        "Trueview 8 Channel IP HD Combo",
							Description: "8-channel IP HD system with H.265 NVR and weatherproof 3MP cameras.",
							Price:       "26900", InStock: true, Rating: 4.2, Reviews: 36,
							Specs: map[string]string{"Channels": "8 PoE", "Cameras": "8 x 3MP IP", "Compression": "H.265"},
						}},
					}},
				},
			},
			{
				Name: "Analog HD Systems", Service: "CCTV", Category: "Analog HD Systems",
				Brands: []BrandSpec{
					{Name: "CP Plus", Models: []ModelSpec{
						{Name: "2.4MP Analog HD Combo Kit", Image: imageBase + "/cctv/cpplus-ahd-kit.jpg", Product: &ProductSpec{
							Name:        "CP Plus 2.4MP Analog HD Combo Kit",
							Description: "Analog HD kit with 4-channel DVR, four 2.4MP dome/bullet cameras and accessories.",
							Price:       "12400", OriginalPrice: "14800", InStock: true, Rating: 4.3, Reviews: 167,
							Specs: map[string]string{"Channels": "4", "Cameras": "4 x 2.4MP", "DVR": "Cosmic 4ch", "Warranty": "2 Years"},
						}},
					}},
					{Name: "Consistent", Models: []ModelSpec{
						{Name: "5MP Analog HD Surveillance Kit", Image: imageBase + "/cctv/consistent-ahd.jpg", Product: &ProductSpec{
							Name:        "Consistent 5MP Analog HD Surveillance Kit",
							Description: "High-resolution analog HD kit with 5MP cameras and metal housings.",
							Price:       "15900", InStock: true, Rating: 4.0, Reviews: 29,
							Specs: map[string]string{"Channels": "4", "Cameras": "4 x 5MP", "Housing": "Metal"},
						}},
					}},
				},
			},
			{
				Name: "Computers", Service: "Computers", Category: "Desktop PC",
				Brands: []BrandSpec{
					{Name: "HP", Models: []ModelSpec{
						{Name: "Pro Tower 280 G9 Desktop", Image: imageBase + "/computers/hp-280g9.jpg", Product: &ProductSpec{
							Name:        "HP Pro Tower 280 G9 Desktop",
							Description: "Business desktop with Intel Core i5 12th Gen, 8GB RAM and 512GB SSD.",
							Price:       "46500", OriginalPrice: "52000", InStock: true, Rating: 4.5, Reviews: 88,
							Specs: map[string]string{"Processor": "Intel Core i5-12400", "RAM": "8GB DDR4", "Storage": "512GB NVMe SSD", "OS": "Windows 11 Pro"},
						}},
					}},
				},
			},
			{
				Name: "Printers", Service: "Computers", Category: "Printers",
				Brands: []BrandSpec{
					{Name: "TCS", Models: []ModelSpec{
						{Name: "Thermal Receipt Printer", Image: imageBase + "/computers/tcs-thermal.jpg", Product: &ProductSpec{
							Name:        "TCS Thermal Receipt Printer",
							Description: "80mm thermal receipt printer with auto-cutter for POS billing counters.",
							Price:       "7200", InStock: true, Rating: 4.1, Reviews: 54,
							Specs: map[string]string{"Width": "80mm", "Speed": "230mm/s", "Interface": "USB + LAN", "Cutter": "Auto"},
						}},
					}},
				},
			},
			{
				Name: "Monitors", Service: "Computers", Category: "Monitors",
				Brands: []BrandSpec{
					{Name: "Dahua", Models: []ModelSpec{
						{Name: "22 Inch Full HD LED Monitor", Image: imageBase + "/computers/dahua-22.jpg", Product: &ProductSpec{
							Name:        "Dahua 22 Inch Full HD LED Monitor",
							Description: "22-inch LED monitor suitable for surveillance walls and office desktops.",
							Price:       "6400", OriginalPrice: "7500", InStock: true, Rating: 4.2, Reviews: 96,
							Specs: map[string]string{"Size": "21.5 Inch", "Resolution": "1920x1080", "Ports": "HDMI + VGA", "Panel": "VA"},
						}},
					}},
				},
			},
			{
				Name: "Network Switches", Service: "Networking", Category: "Network Switches",
				Brands: []BrandSpec{
					{Name: "D-Link", Models: []ModelSpec{
						{Name: "8 Port Gigabit Desktop Switch", Image: imageBase + "/networking/dlink-8port.jpg", Product: &ProductSpec{
							Name:        "D-Link 8 Port Gigabit Desktop Switch",
							Description: "Unmanaged 8-port gigabit switch with plug-and-play setup and fanless design.",
							Price:       "1650", OriginalPrice: "1950", InStock: true, Rating: 4.6, Reviews: 412,
							Specs: map[string]string{"Ports": "8 x 10/100/1000", "Switching": "16Gbps", "Mount": "Desktop"},
						}},
					}},
					{Name: "Consistent", Models: []ModelSpec{
						{Name: "24 Port Rackmount Switch", Image: imageBase + "/networking/consistent-24.jpg", Product: &ProductSpec{
							Name:        "Consistent 24 Port Rackmount Switch",
							Description: "24-port fast ethernet rackmount switch for structured cabling installations.",
							Price:       "4200", InStock: true, Rating: 4.0, Reviews: 38,
							Specs: map[string]string{"Ports": "24 x 10/100", "Mount": "1U Rack"},
						}},
					}},
				},
			},
			{
				Name: "Routers", Service: "Networking", Category: "Routers",
				Brands: []BrandSpec{
					{Name: "Tenda", Models: []ModelSpec{
						{Name: "AC1200 Dual Band WiFi Router", Image: imageBase + "/networking/tenda-ac1200.jpg", Product: &ProductSpec{
							Name:        "Tenda AC1200 Dual Band WiFi Router",
							Description: "Dual-band wireless router with four external antennas and parental controls.",
							Price:       "1999", OriginalPrice: "2490", InStock: true, Rating: 4.3, Reviews: 523,
							Specs: map[string]string{"Speed": "1200Mbps", "Bands": "2.4GHz + 5GHz", "Antennas": "4 x 6dBi"},
						}},
					}},
					{Name: "CP Plus", Models: []ModelSpec{
						{Name: "4G Sim Based Router", Image: imageBase + "/networking/cpplus-4g.jpg", Product: &ProductSpec{
							Name:        "CP Plus 4G Sim Based Router",
							Description: "4G LTE router with sim slot for surveillance sites without wired broadband.",
							Price:       "4500", InStock: true, Rating: 4.1, Reviews: 67,
							Specs: map[string]string{"Network": "4G LTE", "WiFi": "300Mbps", "Ports": "2 x LAN"},
						}},
					}},
				},
			},
			{
				Name: "Cables", Service: "Networking", Category: "Cables",
				Brands: []BrandSpec{
					{Name: "HyNet", Models: []ModelSpec{
						{Name: "Cat6 UTP Cable 305m Box", Image: imageBase + "/networking/hynet-cat6.jpg", Product: &ProductSpec{
							Name:        "HyNet Cat6 UTP Cable 305m Box",
							Description: "Pure copper Cat6 cable box for gigabit network and IP camera cabling.",
							Price:       "5800", OriginalPrice: "6500", InStock: true, Rating: 4.4, Reviews: 143,
							Specs: map[string]string{"Category": "Cat6 UTP", "Length": "305m", "Conductor": "Pure Copper 23AWG"},
						}},
					}},
					{Name: "Olive", Models: []ModelSpec{
						{Name: "3+1 CCTV Coaxial Cable 90m", Image: imageBase + "/networking/olive-coax.jpg", Product: &ProductSpec{
							Name:        "Olive 3+1 CCTV Coaxial Cable 90m",
							Description: "3+1 coaxial cable roll with power core for analog camera installations.",
							Price:       "1450", InStock: true, Rating: 4.0, Reviews: 89,
							Specs: map[string]string{"Type": "3+1 Coaxial", "Length": "90m"},
						}},
					}},
				},
			},
			{
				Name: "PoE Switches", Service: "Networking", Category: "PoE Switches",
				Brands: []BrandSpec{
					{Name: "Rova", Models: []ModelSpec{
						{Name: "4 Port PoE Switch with Uplink", Image: imageBase + "/networking/rova-poe4.jpg", Product: &ProductSpec{
							Name:        "Rova 4 Port PoE Switch with Uplink",
							Description: "4-port PoE switch with 250m extend mode for powering IP cameras over ethernet.",
							Price:       "2100", InStock: true, Rating: 4.2, Reviews: 72,
							Specs: map[string]string{"PoE Ports": "4", "Uplink": "2 x 100Mbps", "Budget": "60W"},
						}},
					}},
				},
			},
			{
				Name: "Biometrics", Service: "Access Controls", Category: "Biometrics",
				Brands: []BrandSpec{
					{Name: "Essel", Models: []ModelSpec{
						{Name: "Fingerprint Time Attendance Machine", Image: imageBase + "/access/essel-fp.jpg", Product: &ProductSpec{
							Name:        "Essel Fingerprint Time Attendance Machine",
							Description: "Standalone fingerprint attendance terminal with cloud sync and 1000-user capacity.",
							Price:       "6800", OriginalPrice: "7900", InStock: true, Rating: 4.3, Reviews: 112,
							Specs: map[string]string{"Capacity": "1000 Users", "Modes": "Finger + PIN + Card", "Connectivity": "TCP/IP + USB"},
						}},
					}},
					{Name: "Hikvision", Models: []ModelSpec{
						{Name: "Face Recognition Terminal", Image: imageBase + "/access/hik-face.jpg", Product: &ProductSpec{
							Name:        "Hikvision Face Recognition Terminal",
							Description: "Touch-free face recognition access terminal with sub-second matching.",
							Price:       "21500", InStock: true, Rating: 4.6, Reviews: 47,
							Specs: map[string]string{"Capacity": "1500 Faces", "Speed": "<0.2s", "Display": "4.3 Inch LCD"},
						}},
					}},
				},
			},
			{
				Name: "Electronic Locks", Service: "Access Controls", Category: "Electronic Locks",
				Brands: []BrandSpec{
					{Name: "Essel", Models: []ModelSpec{
						{Name: "Smart Digital Door Lock", Image: imageBase + "/access/essel-lock.jpg", Product: &ProductSpec{
							Name:        "Essel Smart Digital Door Lock",
							Description: "Keyless digital door lock with fingerprint, PIN, RFID card and mechanical key access.",
							Price:       "10900", OriginalPrice: "13500", InStock: true, Rating: 4.4, Reviews: 93,
							Specs: map[string]string{"Access": "Finger + PIN + RFID + Key", "Battery": "4 x AA", "Material": "Zinc Alloy"},
						}},
					}},
				},
			},
			{
				Name: "GPS Devices", Service: "Access Controls", Category: "GPS Devices for Vehicles",
				Brands: []BrandSpec{
					{Name: "Trueview", Models: []ModelSpec{
						{Name: "Vehicle GPS Tracker with Relay", Image: imageBase + "/access/trueview-gps.jpg", Product: &ProductSpec{
							Name:        "Trueview Vehicle GPS Tracker with Relay",
							Description: "Real-time vehicle GPS tracker with remote engine cut-off relay and geo-fencing alerts.",
							Price:       "2900", InStock: true, Rating: 4.1, Reviews: 205,
							Specs: map[string]string{"Positioning": "GPS + AGPS", "Relay": "Engine Cut-off", "App": "Android + iOS"},
						}},
					}},
				},
			},
			{
				Name: "Fire Panels", Service: "Fire Alarms", Category: "Fire Panels",
				Brands: []BrandSpec{
					{Name: "Impact", Models: []ModelSpec{
						{Name: "2 Zone Fire Alarm Control Panel", Image: imageBase + "/fire/impact-panel2.jpg", Product: &ProductSpec{
							Name:        "Impact 2 Zone Fire Alarm Control Panel",
							Description: "Conventional 2-zone fire alarm panel with battery backup and sounder outputs.",
							Price:       "5400", OriginalPrice: "6200", InStock: true, Rating: 4.2, Reviews: 61,
							Specs: map[string]string{"Zones": "2", "Backup": "Sealed Lead Acid", "Outputs": "2 Sounder Circuits"},
						}},
					}},
				},
			},
			{
				Name: "Smoke Detectors", Service: "Fire Alarms", Category: "Smoke Detectors",
				Brands: []BrandSpec{
					{Name: "Impact", Models: []ModelSpec{
						{Name: "Photoelectric Smoke Detector", Image: imageBase + "/fire/impact-smoke.jpg", Product: &ProductSpec{
							Name:        "Impact Photoelectric Smoke Detector",
							Description: "Ceiling-mount photoelectric smoke sensor with LED indication for conventional panels.",
							Price:       "850", InStock: true, Rating: 4.0, Reviews: 134,
							Specs: map[string]string{"Type": "Photoelectric", "Voltage": "12-24VDC", "Coverage": "60 sqm"},
						}},
					}},
				},
			},
			{
				Name: "Conventional Fire Alarms", Service: "Fire Alarms", Category: "Conventional Fire Alarm Systems",
				Brands: []BrandSpec{
					{Name: "Agni", Models: []ModelSpec{
						{Name: "4 Zone Conventional Fire System", Image: imageBase + "/fire/agni-4zone.jpg", Product: &ProductSpec{
							Name:        "Agni 4 Zone Conventional Fire System",
							Description: "Complete conventional fire alarm package with 4-zone panel, detectors and hooters.",
							Price:       "14800", InStock: true, Rating: 4.3, Reviews: 27,
							Specs: map[string]string{"Zones": "4", "Detectors": "8 Smoke + 2 Heat", "Hooters": "2"},
						}},
					}},
				},
			},
			{
				Name: "Addressable Fire Alarms", Service: "Fire Alarms", Category: "Analogue Addressable Fire Alarm Systems",
				Brands: []BrandSpec{
					{Name: "Ravel", Models: []ModelSpec{
						{Name: "1 Loop Addressable Fire Panel", Image: imageBase + "/fire/ravel-loop1.jpg", Product: &ProductSpec{
							Name:        "Ravel 1 Loop Addressable Fire Panel",
							Description: "Analogue addressable panel supporting 127 devices per loop with event logging.",
							Price:       "38500", OriginalPrice: "42000", InStock: true, Rating: 4.5, Reviews: 18,
							Specs: map[string]string{"Loops": "1", "Devices": "127 per Loop", "Log": "10000 Events"},
						}},
					}},
				},
			},
			{
				Name: "Video Door Phones", Service: "Video Door Phones", Category: "Video Door Phones",
				Brands: []BrandSpec{
					{Name: "Hikvision", Models: []ModelSpec{
						{Name: "7 Inch Video Door Phone Kit", Image: imageBase + "/vdp/hik-7inch.jpg", Product: &ProductSpec{
							Name:        "Hikvision 7 Inch Video Door Phone Kit",
							Description: "Video door phone kit with 7-inch indoor monitor and metal outdoor station.",
							Price:       "9800", OriginalPrice: "11500", InStock: true, Rating: 4.5, Reviews: 156,
							Specs: map[string]string{"Monitor": "7 Inch TFT", "Station": "Metal, IR Camera", "Unlock": "Electric Lock Support"},
						}},
					}},
					{Name: "Vertel", Models: []ModelSpec{
						{Name: "4 Wire Video Door Phone", Image: imageBase + "/vdp/vertel-4wire.jpg", Product: &ProductSpec{
							Name:        "Vertel 4 Wire Video Door Phone",
							Description: "Budget 4-wire video door phone with intercom between indoor units.",
							Price:       "5600", InStock: true, Rating: 4.0, Reviews: 83,
							Specs: map[string]string{"Wiring": "4 Wire", "Monitor": "7 Inch", "Intercom": "Yes"},
						}},
					}},
				},
			},
			{
				Name: "Analogue VDP", Service: "Video Door Phones", Category: "Analogue Video Door Phones",
				Brands: []BrandSpec{
					{Name: "Impact", Models: []ModelSpec{
						{Name: "Analogue Villa Door Phone", Image: imageBase + "/vdp/impact-villa.jpg", Product: &ProductSpec{
							Name:        "Impact Analogue Villa Door Phone",
							Description: "Analogue villa kit with hands-free indoor monitor and rain-shield door station.",
							Price:       "4800", InStock: true, Rating: 3.9, Reviews: 41,
							Specs: map[string]string{"Type": "Analogue", "Monitor": "7 Inch", "Mount": "Surface"},
						}},
					}},
				},
			},
			{
				Name: "IP VDP", Service: "Video Door Phones", Category: "IP Video Door Phones",
				Brands: []BrandSpec{
					{Name: "Hikvision", Models: []ModelSpec{
						{Name: "IP Villa Door Station Kit", Image: imageBase + "/vdp/hik-ip-villa.jpg", Product: &ProductSpec{
							Name:        "Hikvision IP Villa Door Station Kit",
							Description: "Network video door phone with app calling, snapshot log and remote unlock.",
							Price:       "16800", OriginalPrice: "18900", InStock: true, Rating: 4.6, Reviews: 64,
							Specs: map[string]string{"Type": "IP", "App": "Hik-Connect", "PoE": "Yes"},
						}},
					}},
				},
			},
			{
				Name: "Solar", Service: "Solar Power", Category: "Solar Inverters",
				Brands: []BrandSpec{
					{Name: "UTL", Models: []ModelSpec{
						{Name: "Gamma Plus 3kVA Solar Inverter", Image: imageBase + "/solar/utl-gamma3.jpg", Product: &ProductSpec{
							Name:        "UTL Gamma Plus 3kVA Solar Inverter",
							Description: "MPPT solar inverter for off-grid homes with 3kVA capacity and LCD display.",
							Price:       "24500", OriginalPrice: "27900", InStock: true, Rating: 4.4, Reviews: 132,
							Specs: map[string]string{"Capacity": "3kVA", "Charger": "MPPT 50A", "Battery": "36V"},
						}},
					}},
				},
			},
			{
				Name: "Speakers", Service: "Audio Video", Category: "Speakers",
				Brands: []BrandSpec{
					{Name: "Ahuja", Models: []ModelSpec{
						{Name: "Wall Mount PA Speaker 15W", Image: imageBase + "/av/ahuja-wall15.jpg", Product: &ProductSpec{
							Name:        "Ahuja Wall Mount PA Speaker 15W",
							Description: "15W wall-mount PA speaker for announcements in offices, schools and showrooms.",
							Price:       "1850", InStock: true, Rating: 4.3, Reviews: 201,
							Specs: map[string]string{"Power": "15W", "Line": "70V/100V", "Mount": "Wall Bracket"},
						}},
					}},
				},
			},
			{
				Name: "Amplifiers", Service: "Audio Video", Category: "Amplifiers",
				Brands: []BrandSpec{
					{Name: "Ahuja", Models: []ModelSpec{
						{Name: "SSB-120 PA Amplifier", Image: imageBase + "/av/ahuja-ssb120.jpg", Product: &ProductSpec{
							Name:        "Ahuja SSB-120 PA Amplifier",
							Description: "120W PA mixer amplifier with USB playback and four mic inputs.",
							Price:       "9200", OriginalPrice: "10500", InStock: true, Rating: 4.5, Reviews: 87,
							Specs: map[string]string{"Power": "120W", "Inputs": "4 Mic + 2 Aux", "Playback": "USB/SD"},
						}},
					}},
				},
			},
			{
				Name: "Power Supply", Service: "Power Supply", Category: "Power Supplies",
				Brands: []BrandSpec{
					{Name: "Hikvision", Models: []ModelSpec{
						{Name: "8 Channel CCTV Power Supply", Image: imageBase + "/power/hik-smps8.jpg", Product: &ProductSpec{
							Name:        "Hikvision 8 Channel CCTV Power Supply",
							Description: "12V 10A SMPS power supply with 8 fused outputs for camera installations.",
							Price:       "1650", InStock: true, Rating: 4.2, Reviews: 176,
							Specs: map[string]string{"Output": "12VDC 10A", "Channels": "8 Fused", "Protection": "Short Circuit"},
						}},
					}},
					{Name: "EonSecure", Models: []ModelSpec{
						{Name: "4 Channel Power Supply Unit", Image: imageBase + "/power/eon-smps4.jpg", Product: &ProductSpec{
							Name:        "EonSecure 4 Channel Power Supply Unit",
							Description: "Compact 12V 5A supply for 4-camera analog installations.",
							Price:       "950", InStock: true, Rating: 4.0, Reviews: 98,
							Specs: map[string]string{"Output": "12VDC 5A", "Channels": "4"},
						}},
					}},
				},
			},
			{
				Name: "UPS", Service: "Power Supply", Category: "UPS",
				Brands: []BrandSpec{
					{Name: "Zebronic", Models: []ModelSpec{
						{Name: "600VA Line Interactive UPS", Image: imageBase + "/power/zeb-600va.jpg", Product: &ProductSpec{
							Name:        "Zebronic 600VA Line Interactive UPS",
							Description: "Desktop UPS with 600VA capacity and automatic voltage regulation.",
							Price:       "2400", OriginalPrice: "2850", InStock: true, Rating: 4.1, Reviews: 245,
							Specs: map[string]string{"Capacity": "600VA", "Backup": "15-20 min", "Sockets": "3"},
						}},
					}},
				},
			},
			{
				Name: "Storage", Service: "Accessories", Category: "Storage",
				Brands: []BrandSpec{
					{Name: "WD", Models: []ModelSpec{
						{Name: "Purple 2TB Surveillance Hard Drive", Image: imageBase + "/accessories/wd-purple2tb.jpg", Product: &ProductSpec{
							Name:        "WD Purple 2TB Surveillance Hard Drive",
							Description: "Surveillance-rated 2TB hard drive built for 24x7 DVR/NVR recording workloads.",
							Price:       "5900", OriginalPrice: "6700", InStock: true, Rating: 4.7, Reviews: 389,
							Specs: map[string]string{"Capacity": "2TB", "Interface": "SATA 6Gb/s", "Workload": "180TB/yr", "Warranty": "3 Years"},
						}},
					}},
				},
			},
			{
				Name: "Connectors", Service: "Accessories", Category: "Connectors",
				Brands: []BrandSpec{
					{Name: "Hi-Focus", Models: []ModelSpec{
						{Name: "BNC Connector with Copper Pin", Image: imageBase + "/accessories/hifocus-bnc.jpg", Product: &ProductSpec{
							Name:        "Hi-Focus BNC Connector with Copper Pin",
							Description: "Moulded BNC connector pack for coaxial camera terminations.",
							Price:       "350", InStock: true, Rating: 4.0, Reviews: 167,
							Specs: map[string]string{"Pack": "10 Pieces", "Pin": "Copper"},
						}},
					}},
				},
			},
			{
				Name: "EPABX", Service: "EPABX & Intercom", Category: "EPABX & Intercom",
				Brands: []BrandSpec{
					{Name: "Beetal", Models: []ModelSpec{
						{Name: "Caller ID Corded Phone", Image: imageBase + "/epabx/beetal-cid.jpg", Product: &ProductSpec{
							Name:        "Beetal Caller ID Corded Phone",
							Description: "Corded landline phone with caller ID display for EPABX extensions.",
							Price:       "1150", InStock: true, Rating: 4.1, Reviews: 212,
							Specs: map[string]string{"Display": "Caller ID", "Redial": "Last 5", "Mount": "Desk/Wall"},
						}},
					}},
					{Name: "Matrix", Models: []ModelSpec{
						{Name: "ETERNITY PE 3+8 EPABX System", Image: imageBase + "/epabx/matrix-pe.jpg", Product: &ProductSpec{
							Name:        "Matrix ETERNITY PE 3+8 EPABX System",
							Description: "Small office EPABX supporting 3 trunk lines and 8 extensions with voice mail.",
							Price:       "12800", OriginalPrice: "14500", InStock: true, Rating: 4.4, Reviews: 59,
							Specs: map[string]string{"Trunks": "3", "Extensions": "8", "Voicemail": "Yes"},
						}},
					}},
				},
			},
		},
	}
}
