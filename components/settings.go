package components

import "github.com/yohamta/donburi"

// SettingsData holds the viewer settings that survive restarts
type SettingsData struct {
	SFXVolume     float64 `json:"sfxVolume"`
	Muted         bool    `json:"muted"`
	ShowColliders bool    `json:"showColliders"`
}

var Settings = donburi.NewComponentType[SettingsData]()
