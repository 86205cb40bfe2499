package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for sound type %s to be set", st)
		}
	}
}

// TestLoadAudioConfigOverrides verifies environment variables override defaults
func TestLoadAudioConfigOverrides(t *testing.T) {
	t.Setenv("BOING_AUDIO_ENABLED", "false")
	t.Setenv("BOING_MASTER_VOLUME", "150")
	t.Setenv("BOING_SFX_VOLUMES", `{"floor": 0.25, "wall": -1}`)
	t.Setenv("BOING_SAMPLE_RATE", "22050")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected Enabled=false from env")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected master volume clamped to 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundFloorBounce] != 0.25 {
		t.Errorf("Expected floor volume 0.25, got %f", cfg.EffectVolumes[SoundFloorBounce])
	}
	if cfg.EffectVolumes[SoundWallBounce] != 0 {
		t.Errorf("Expected wall volume clamped to 0, got %f", cfg.EffectVolumes[SoundWallBounce])
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
}

// TestLoadAudioConfigInvalid verifies malformed values are ignored
func TestLoadAudioConfigInvalid(t *testing.T) {
	t.Setenv("BOING_AUDIO_ENABLED", "sometimes")
	t.Setenv("BOING_MASTER_VOLUME", "loud")
	t.Setenv("BOING_SFX_VOLUMES", "{not json")
	t.Setenv("BOING_SAMPLE_RATE", "-5")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults for invalid env, got %+v", cfg)
	}
}
