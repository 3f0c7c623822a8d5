package terminalbench

import "testing"

func TestAmbientEnv(t *testing.T) {
	t.Setenv("TB_TEST_SET", "value")
	t.Setenv("TB_TEST_EMPTY", "")

	env := AmbientEnv("TB_TEST_SET", "TB_TEST_EMPTY", "TB_TEST_UNSET")

	if len(env) != 3 {
		t.Fatalf("len(env) = %d, want 3", len(env))
	}
	if env["TB_TEST_SET"] != "value" {
		t.Errorf("TB_TEST_SET = %q, want %q", env["TB_TEST_SET"], "value")
	}
	if v, ok := env["TB_TEST_EMPTY"]; !ok || v != "" {
		t.Errorf("TB_TEST_EMPTY = %q, %v; want empty string present", v, ok)
	}
	if v, ok := env["TB_TEST_UNSET"]; !ok || v != "" {
		t.Errorf("TB_TEST_UNSET = %q, %v; want empty string present", v, ok)
	}
}

func TestAmbientEnvEmpty(t *testing.T) {
	env := AmbientEnv()
	if len(env) != 0 {
		t.Fatalf("len(env) = %d, want 0", len(env))
	}
}
