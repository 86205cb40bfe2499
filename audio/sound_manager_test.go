package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(SoundFloorBounce)
	sm.Play(SoundWallBounce)
	sm.Play(SoundType(99))
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerDisabled verifies a disabled config refuses output without touching the device
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	err := sm.Initialize()
	if !errors.Is(err, ErrAudioUnavailable) {
		t.Errorf("Expected ErrAudioUnavailable, got %v", err)
	}
	if sm.Initialized() {
		t.Error("Disabled manager must not initialize")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		if !errors.Is(err, ErrAudioUnavailable) {
			t.Errorf("Expected initialization error to wrap ErrAudioUnavailable, got %v", err)
		}
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.Play(SoundFloorBounce)
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Expected cleanup to reset initialized state")
	}
}
