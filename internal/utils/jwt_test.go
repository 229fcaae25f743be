package utils

import (
	"testing"
	"time"
)

// 测试内容：验证登录令牌签发与解析的往返一致性。
func TestLoginTokenRoundTrip(t *testing.T) {
	token, err := GenerateLoginToken(42, "alice", true, time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken: %v", err)
	}

	claims, err := ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken: %v", err)
	}
	if claims.ID != 42 || claims.Username != "alice" || !claims.Admin {
		t.Fatalf("声明不符: %+v", claims)
	}
	if claims.Type != "login" {
		t.Fatalf("期望令牌类型为 login，实际为 %q", claims.Type)
	}
	if claims.Issuer != "fotoshare-server" {
		t.Fatalf("签发者不符: %q", claims.Issuer)
	}
}

// 测试内容：验证过期令牌被拒绝。
func TestParseLoginToken_Expired(t *testing.T) {
	token, err := GenerateLoginToken(1, "alice", false, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateLoginToken: %v", err)
	}
	if _, err := ParseLoginToken(token); err == nil {
		t.Fatalf("期望过期令牌被拒绝")
	}
}

// 测试内容：验证畸形令牌被拒绝。
func TestParseLoginToken_Malformed(t *testing.T) {
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseLoginToken(bad); err == nil {
			t.Fatalf("期望畸形令牌 %q 被拒绝", bad)
		}
	}
}
