package domain

// Seed collections act as the default database: they initialize the state
// store on startup and are replaced wholesale by a restored snapshot.

// SeedBranches returns the fixed branch reference data.
func SeedBranches() []Branch {
	return []Branch{
		{
			ID:      BranchMinquan,
			Name:    "民權館 (Minquan)",
			Address: "高雄市新興區民權一路251號27樓",
			MRT:     "信義國小站 3號出口",
			Image:   "https://picsum.photos/800/600?random=1",
		},
		{
			ID:      BranchSiwei,
			Name:    "四維館 (Siwei)",
			Address: "高雄市苓雅區四維三路6號",
			MRT:     "三多商圈站 6號出口",
			Image:   "https://picsum.photos/800/600?random=2",
		},
		{
			ID:      BranchYancheng,
			Name:    "鹽埕館 (Yancheng)",
			Address: "高雄市鹽埕區大勇路11號3樓",
			MRT:     "鹽埕埔站 2號出口",
			Image:   "https://picsum.photos/800/600?random=3",
		},
	}
}

func galleryFor(cover string) []string {
	return []string{cover, "https://picsum.photos/400/300?random=99", "https://picsum.photos/400/300?random=98"}
}

// SeedSpaces returns the initial bookable spaces across branches.
func SeedSpaces() []LocationSpace {
	return []LocationSpace{
		{ID: "mq-20a", BranchID: BranchMinquan, Name: "20A 會議室", Description: "適合中型會議，配備高清投影。", Capacity: "10-12人", ImageURL: "https://picsum.photos/400/300?random=10", Images: galleryFor("https://picsum.photos/400/300?random=10"), Features: []string{"wifi", "projector", "whiteboard", "ac", "power"}},
		{ID: "mq-20b", BranchID: BranchMinquan, Name: "20B 會議室", Description: "小型討論空間，隱私性佳。", Capacity: "4-6人", ImageURL: "https://picsum.photos/400/300?random=11", Images: galleryFor("https://picsum.photos/400/300?random=11"), Features: []string{"wifi", "tv", "whiteboard", "power"}},
		{ID: "mq-2101", BranchID: BranchMinquan, Name: "2101 會議室", Description: "高樓層景觀會議室。", Capacity: "8人", ImageURL: "https://picsum.photos/400/300?random=12", Images: galleryFor("https://picsum.photos/400/300?random=12"), Features: []string{"wifi", "projector", "ac", "power", "coffee"}},
		{ID: "mq-2121", BranchID: BranchMinquan, Name: "2121 會議室", Description: "標準商務會議配置。", Capacity: "8人", ImageURL: "https://picsum.photos/400/300?random=13", Images: galleryFor("https://picsum.photos/400/300?random=13"), Features: []string{"wifi", "tv", "whiteboard"}},
		{ID: "mq-21f-multi", BranchID: BranchMinquan, Name: "21F 多功能空間", Description: "開放式活動場地，適合講座。", Capacity: "30-40人", ImageURL: "https://picsum.photos/400/300?random=14", Images: galleryFor("https://picsum.photos/400/300?random=14"), Features: []string{"wifi", "projector", "mic", "speaker", "ac", "power"}},
		{ID: "mq-21f-meet", BranchID: BranchMinquan, Name: "21F 會議室", Description: "獨立安靜的會議空間。", Capacity: "6人", ImageURL: "https://picsum.photos/400/300?random=15", Images: galleryFor("https://picsum.photos/400/300?random=15"), Features: []string{"wifi", "whiteboard"}},
		{ID: "mq-27f-meet", BranchID: BranchMinquan, Name: "27F 會議室", Description: "頂樓景觀，尊榮接待首選。", Capacity: "10人", ImageURL: "https://picsum.photos/400/300?random=16", Images: galleryFor("https://picsum.photos/400/300?random=16"), Features: []string{"wifi", "tv", "coffee", "ac"}},
		{ID: "mq-27f-div", BranchID: BranchMinquan, Name: "27F 多元空間", Description: "彈性隔間，可作教育訓練。", Capacity: "20人", ImageURL: "https://picsum.photos/400/300?random=17", Images: galleryFor("https://picsum.photos/400/300?random=17"), Features: []string{"wifi", "projector", "whiteboard"}},
		{ID: "mq-28f-f1", BranchID: BranchMinquan, Name: "28F F1 教室", Description: "專業培訓教室配置。", Capacity: "50人", ImageURL: "https://picsum.photos/400/300?random=18", Images: galleryFor("https://picsum.photos/400/300?random=18"), Features: []string{"wifi", "projector", "mic", "speaker", "whiteboard"}},
		{ID: "sw-12f", BranchID: BranchSiwei, Name: "12F 會議室", Description: "四維館核心會議空間，交通便利。", Capacity: "12人", ImageURL: "https://picsum.photos/400/300?random=19", Images: galleryFor("https://picsum.photos/400/300?random=19"), Features: []string{"wifi", "projector", "whiteboard", "power"}},
		{ID: "yc-2f", BranchID: BranchYancheng, Name: "2F 會議室", Description: "駁二特區旁的商務據點。", Capacity: "8人", ImageURL: "https://picsum.photos/400/300?random=20", Images: galleryFor("https://picsum.photos/400/300?random=20"), Features: []string{"wifi", "tv"}},
		{ID: "yc-4f", BranchID: BranchYancheng, Name: "4F 多元場地", Description: "寬敞空間，適合文創活動或大型會議。", Capacity: "40人", ImageURL: "https://picsum.photos/400/300?random=21", Images: galleryFor("https://picsum.photos/400/300?random=21"), Features: []string{"wifi", "projector", "mic", "speaker", "ac"}},
	}
}

// SeedOfficeTypes returns the leasable office categories. Titles are fixed
// here; post-seed edits touch only description, media, and features.
func SeedOfficeTypes() []OfficeType {
	return []OfficeType{
		{
			ID:          "soho",
			Title:       "SOHO (自由座)",
			Description: "靈活彈性的開放式辦公座位，適合自由工作者、數位遊牧民族。享受無限暢飲的咖啡茶水與高速網路。",
			ImageURL:    "https://picsum.photos/600/400?random=101",
			Images:      []string{"https://picsum.photos/600/400?random=101"},
			Features:    []string{"wifi", "coffee", "ac"},
		},
		{
			ID:          "private-1",
			Title:       "個人辦公室",
			Description: "專屬隱私空間，配備人體工學桌椅。適合需要專注工作環境的專業人士。",
			ImageURL:    "https://picsum.photos/600/400?random=102",
			Images:      []string{"https://picsum.photos/600/400?random=102"},
			Features:    []string{"wifi", "key", "ac"},
		},
		{
			ID:          "office-small",
			Title:       "2-6人 辦公室",
			Description: "小型團隊的最佳起點。獨立隔間，隔音良好，包含辦公家具與文件櫃。",
			ImageURL:    "https://picsum.photos/600/400?random=103",
			Images:      []string{"https://picsum.photos/600/400?random=103"},
			Features:    []string{"wifi", "whiteboard", "ac"},
		},
		{
			ID:          "office-medium",
			Title:       "7-15人 辦公室",
			Description: "中型企業或擴編團隊的理想選擇。寬敞舒適，可客製化配置。",
			ImageURL:    "https://picsum.photos/600/400?random=104",
			Images:      []string{"https://picsum.photos/600/400?random=104"},
			Features:    []string{"wifi", "projector", "ac"},
		},
		{
			ID:          "office-large",
			Title:       "15人以上 辦公室",
			Description: "企業總部級規格。擁有獨立主管室與會議空間，展現企業氣派。",
			ImageURL:    "https://picsum.photos/600/400?random=105",
			Images:      []string{"https://picsum.photos/600/400?random=105"},
			Features:    []string{"wifi", "mic", "ac", "tv"},
		},
	}
}

// SeedWikiItems returns the initial knowledge-base entries.
func SeedWikiItems() []WikiItem {
	return []WikiItem{
		{
			ID:          "printer-setup",
			Title:       "影印機設定 (Printer)",
			Category:    WikiEquipment,
			IconName:    string(GlyphPrinter),
			Description: "Fuji Xerox C5570 驅動安裝與操作。",
			ContentType: ContentGuide,
			Instructions: []string{
				"連接 Wi-Fi: DAOTENG_5G",
				"下載驅動程式 (掃描機身 QR Code)",
				"新增印表機：輸入 IP 192.168.1.200",
				"輸入個人部門識別碼 (PIN Code)",
			},
		},
		{
			ID:          "wifi-connect",
			Title:       "Wi-Fi 連線 (Network)",
			Category:    WikiWifi,
			IconName:    string(GlyphWifi),
			Description: "各區域無線網路名稱與密碼。",
			ContentType: ContentGuide,
			Instructions: []string{
				"開放區 SSID: DAOTENG_GUEST (密碼: daoteng888)",
				"固定座位區 SSID: DAOTENG_MEMBER (密碼: 請洽櫃台)",
				"會議室 SSID: DAOTENG_MEETING",
			},
		},
		{
			ID:          "projector-hdmi",
			Title:       "投影機投放 (Projector)",
			Category:    WikiEquipment,
			IconName:    string(GlyphProjector),
			Description: "會議室無線/有線投影教學。",
			ContentType: ContentGuide,
			Instructions: []string{
				"使用 HDMI 線連接電腦與牆面插座",
				"若使用 AirPlay，請將電視切換至 Input 2",
				"遙控器位於白板下方收納盒",
			},
		},
		{
			ID:          "door-access",
			Title:       "門禁進出 (Access)",
			Category:    WikiAccess,
			IconName:    string(GlyphKey),
			Description: "APP 開門與緊急密碼。",
			ContentType: ContentGuide,
			Instructions: []string{
				"開啟道騰 APP 首頁點擊「開門」",
				"若藍牙失效，請輸入當日臨時密碼 (每日 09:00 更新於公告)",
				"最後離開者請務必確認大門上鎖",
			},
		},
		{
			ID:          "coffee-machine",
			Title:       "咖啡機使用 (Pantry)",
			Category:    WikiEquipment,
			IconName:    string(GlyphCoffee),
			Description: "義式咖啡機操作與清潔。",
			ContentType: ContentGuide,
			Instructions: []string{
				"確認水箱水位充足",
				"放入咖啡豆 (禁止使用調味豆)",
				"按下對應按鈕 (美式/拿鐵)",
				"使用完畢請清理殘渣盒",
			},
		},
		{
			ID:          "printer-jam",
			Title:       "卡紙排除教學 (Video)",
			Category:    WikiEquipment,
			IconName:    string(GlyphVideo),
			Description: "遇到卡紙時的標準處理流程。",
			ContentType: ContentVideo,
			MediaURL:    "https://www.w3schools.com/html/mov_bbb.mp4",
			UploadDate:  "2023-10-26",
		},
		{
			ID:          "floor-plan-mq",
			Title:       "民權館逃生/平面圖",
			Category:    WikiFloorplan,
			IconName:    string(GlyphMap),
			Description: "27F 逃生路線與空間配置圖。",
			ContentType: ContentImage,
			MediaURL:    "https://picsum.photos/800/600?random=100",
			UploadDate:  "2023-09-01",
		},
		{
			ID:          "parking-info",
			Title:       "周邊特約停車場",
			Category:    WikiTransport,
			IconName:    string(GlyphCar),
			Description: "民權館、四維館周邊停車資訊。",
			ContentType: ContentGuide,
			Instructions: []string{
				"民權停車場：每小時 30 元，步行 2 分鐘",
				"四維立體停車場：每小時 40 元，步行 5 分鐘",
				"機車請停放於大樓後方指定區域",
			},
		},
	}
}

// SeedAnnouncements returns the initial operator notices.
func SeedAnnouncements() []Announcement {
	return []Announcement{
		{
			ID:      "1",
			Title:   "10/25 民權館停電通知",
			Date:    "2023-10-25",
			Type:    AnnouncementAlert,
			Details: "因台電進行線路維護工程，民權館將於上午 09:00 至 11:00 暫停供電。請提早儲存檔案並將電腦關機。",
		},
		{
			ID:      "2",
			Title:   "新進駐夥伴歡迎會",
			Date:    "2025-10-22",
			Type:    AnnouncementEvent,
			Details: "歡迎本月新加入的 5 組團隊！現場備有輕食與飲料，歡迎大家來交流認識。",
			Link:    "https://forms.google.com/example",
		},
		{
			ID:      "3",
			Title:   "11月份會議室點數發放",
			Date:    "2023-10-28",
			Type:    AnnouncementInfo,
			Details: "11月份的會議室點數已匯入各公司帳戶，請至會員系統查詢。",
		},
	}
}

// SeedPartners returns the initial business partner listings.
func SeedPartners() []BusinessPartner {
	return []BusinessPartner{
		{ID: "1", Name: "雲端數位科技", Category: "軟體開發", Description: "專注於 AWS 架構與 APP 開發解決方案。", Website: "https://example.com", LogoColor: "bg-blue-500"},
		{ID: "2", Name: "品味行銷設計", Category: "品牌設計", Description: "提供 CIS 企業識別與平面設計服務。", Website: "https://example.com", LogoColor: "bg-pink-500"},
		{ID: "3", Name: "理財通事務所", Category: "會計稅務", Description: "新創公司設立、記帳與稅務諮詢。", Website: "https://example.com", LogoColor: "bg-green-500"},
		{ID: "4", Name: "極速法務團隊", Category: "法律顧問", Description: "商務合約審閱與智慧財產權佈局。", Website: "https://example.com", LogoColor: "bg-purple-500"},
	}
}

// SeedMembers returns the initial member profiles.
func SeedMembers() []MemberProfile {
	return []MemberProfile{
		{ID: "m-001", Name: "雲端數位科技", Password: "cloud2024", PettyCashBalance: 500, MeetingPointsTotal: 60, MeetingPointsUsed: 12, ContractDate: "2025-12-31"},
		{ID: "m-002", Name: "品味行銷設計", Password: "taste888", PettyCashBalance: 300, MeetingPointsTotal: 40, MeetingPointsUsed: 40, ContractDate: "2026-06-30"},
		{ID: "m-003", Name: "理財通事務所", Password: "money666", PettyCashBalance: 1000, MeetingPointsTotal: 120, MeetingPointsUsed: 131, ContractDate: "2025-03-31"},
	}
}

// SeedFoodSpots returns the nearby food map reference data.
func SeedFoodSpots() []FoodSpot {
	return []FoodSpot{
		{ID: "1", Name: "興隆居", Type: "傳統早餐", Distance: "200m", PriceLevel: 1},
		{ID: "2", Name: "老江紅茶牛奶", Type: "飲品/點心", Distance: "350m", PriceLevel: 1},
		{ID: "3", Name: "碳佐麻里", Type: "燒肉精品", Distance: "1.2km", PriceLevel: 3},
		{ID: "4", Name: "丹丹漢堡", Type: "速食", Distance: "500m", PriceLevel: 1},
	}
}

// HouseRules are the shared-area usage rules surfaced in the app and fed to
// the assistant knowledge base.
var HouseRules = []string{
	"開放區域請輕聲細語，通話請至電話亭 (Phone Booth)。",
	"離開座位超過 30 分鐘，請將個人物品帶離桌面。",
	"冰箱每週五下午 17:00 清空，請標示個人物品。",
	"最後一位離開者，請協助關閉公共區域燈光與冷氣。",
}
