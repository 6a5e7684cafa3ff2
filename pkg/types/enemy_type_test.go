package types

import "testing"

func TestParseEnemyType(t *testing.T) {
	for _, et := range AllEnemyTypes() {
		got, err := ParseEnemyType(et.String())
		if err != nil {
			t.Fatalf("ParseEnemyType(%q) failed: %v", et.String(), err)
		}
		if got != et {
			t.Errorf("ParseEnemyType(%q) = %v, want %v", et.String(), got, et)
		}
	}

	if _, err := ParseEnemyType("ufo"); err == nil {
		t.Error("Expected error for unknown enemy type")
	}
}

func TestIsBoss(t *testing.T) {
	if !EnemyBoss.IsBoss() {
		t.Error("EnemyBoss should be boss")
	}
	if EnemyNormal.IsBoss() || EnemyMiddle.IsBoss() {
		t.Error("regular enemies should not be boss")
	}
	if EnemyUnknown.String() != "unknown" {
		t.Errorf("unexpected name for EnemyUnknown: %s", EnemyUnknown.String())
	}
}
