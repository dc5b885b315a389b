// Package i18n хранит строки интерфейса на вьетнамском и английском.
package i18n

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Key string

const (
	Score           Key = "score"
	NextBoss        Key = "nextBoss"
	Lvl             Key = "lvl"
	MissionPaused   Key = "missionPaused"
	PauseHint       Key = "pauseHint"
	Resume          Key = "resume"
	MissionAborted  Key = "missionAborted"
	Level           Key = "level"
	TryAgain        Key = "tryAgain"
	SettingsTitle   Key = "settingsTitle"
	Language        Key = "language"
	BGMVolume       Key = "bgmVolume"
	SFXVolume       Key = "sfxVolume"
	GraphicsQuality Key = "graphicsQuality"
	High            Key = "high"
	Low             Key = "low"
	ResetData       Key = "resetData"
	PersonalBest    Key = "personalBest"
	MaxLevel        Key = "maxLevel"
	TopScore        Key = "topScore"
	StartMission    Key = "startMission"
	ContinueMission Key = "continueMission"
	ControlHint     Key = "controlHint"
	Perks           Key = "perks"
	Stats           Key = "stats"
)

const (
	VN = "vn"
	EN = "en"
)

var tables = map[string]map[Key]string{
	VN: {
		Score:           "ĐIỂM SỐ",
		NextBoss:        "BOSS TIẾP THEO",
		Lvl:             "CẤP",
		MissionPaused:   "TẠM DỪNG NHIỆM VỤ",
		PauseHint:       "Nhấn Space hoặc Chuột Phải để tiếp tục",
		Resume:          "TIẾP TỤC",
		MissionAborted:  "NHIỆM VỤ THẤT BẠI",
		Level:           "CẤP ĐỘ",
		TryAgain:        "THỬ LẠI",
		SettingsTitle:   "CÀI ĐẶT",
		Language:        "Ngôn Ngữ",
		BGMVolume:       "Âm Lượng Nhạc",
		SFXVolume:       "Âm Lượng Hiệu Ứng",
		GraphicsQuality: "Chất Lượng Đồ Họa",
		High:            "CAO",
		Low:             "THẤP",
		ResetData:       "XÓA TOÀN BỘ DỮ LIỆU",
		PersonalBest:    "KỶ LỤC CÁ NHÂN",
		MaxLevel:        "Cấp Tối Đa",
		TopScore:        "Điểm Cao Nhất",
		StartMission:    "BẮT ĐẦU NHIỆM VỤ",
		ContinueMission: "TIẾP TỤC NHIỆM VỤ",
		ControlHint:     "CHẠM HOẶC CLICK ĐỂ DI CHUYỂN & BẮN",
		Perks:           "HIỆU ỨNG",
		Stats:           "CHỈ SỐ",
	},
	EN: {
		Score:           "SCORE",
		NextBoss:        "NEXT BOSS IN",
		Lvl:             "LVL",
		MissionPaused:   "MISSION PAUSED",
		PauseHint:       "Space or Right-Click to Resume",
		Resume:          "RESUME",
		MissionAborted:  "MISSION ABORTED",
		Level:           "LEVEL",
		TryAgain:        "TRY AGAIN",
		SettingsTitle:   "SETTINGS",
		Language:        "Language",
		BGMVolume:       "BGM Volume",
		SFXVolume:       "SFX Volume",
		GraphicsQuality: "Graphics Quality",
		High:            "HIGH",
		Low:             "LOW",
		ResetData:       "RESET ALL GAME DATA",
		PersonalBest:    "PERSONAL BEST",
		MaxLevel:        "Max Level",
		TopScore:        "Top Score",
		StartMission:    "START MISSION",
		ContinueMission: "CONTINUE MISSION",
		ControlHint:     "TAP OR CLICK TO CONTROL & SHOOT",
		Perks:           "PERKS",
		Stats:           "STATS",
	},
}

// T возвращает строку для языка; неизвестный язык или ключ
// берётся из английской таблицы, затем сам ключ.
func T(lang string, key Key) string {
	if s, ok := tables[lang][key]; ok {
		return s
	}
	if s, ok := tables[EN][key]; ok {
		return s
	}
	return string(key)
}

// Next переключает язык по кругу vn -> en -> vn.
func Next(lang string) string {
	if lang == VN {
		return EN
	}
	return VN
}

// ASCII убирает диакритику: растровый шрифт знает только ASCII.
func ASCII(s string) string {
	s = strings.NewReplacer("Đ", "D", "đ", "d").Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
