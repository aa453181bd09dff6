package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Debug         bool     `json:"debug"`
		AllowedHosts  []string `json:"allowed_hosts"`
		SecretKey     string   `json:"secret_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		SeedDemoData  bool     `json:"seed_demo_data"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Port           string   `json:"port"`
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		MealPassExpiryInterval Duration `json:"mealpass_expiry_interval"`
		StaleOrderInterval     Duration `json:"stale_order_interval"`
		StaleOrderAge          Duration `json:"stale_order_age"`
	} `json:"workers,omitempty"`

	Kitchen struct {
		ServerURL       string   `json:"server_url"`
		RefreshInterval Duration `json:"refresh_interval"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"kitchen,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Debug:         jsonCfg.App.Debug,
			AllowedHosts:  jsonCfg.App.AllowedHosts,
			SecretKey:     jsonCfg.App.SecretKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			SeedDemoData:  jsonCfg.App.SeedDemoData,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			Port:           jsonCfg.Server.Port,
			Address:        jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			MealPassExpiryInterval: time.Duration(jsonCfg.Workers.MealPassExpiryInterval),
			StaleOrderInterval:     time.Duration(jsonCfg.Workers.StaleOrderInterval),
			StaleOrderAge:          time.Duration(jsonCfg.Workers.StaleOrderAge),
		},
		Kitchen: Kitchen{
			ServerURL:       jsonCfg.Kitchen.ServerURL,
			RefreshInterval: time.Duration(jsonCfg.Kitchen.RefreshInterval),
			RequestTimeout:  time.Duration(jsonCfg.Kitchen.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
