package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/repository/memory"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	sessions := memory.NewSessionStore(time.Hour, time.Hour)
	t.Cleanup(func() { sessions.Close() })

	r := New(Deps{
		Store:         memory.NewStore(),
		Sessions:      sessions,
		SessionSecret: []byte("test-secret"),
		SessionTTL:    time.Hour,
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// newClient 每个账号独立 cookie jar，模拟不同浏览器
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func register(t *testing.T, client *http.Client, base, username string, userType model.UserType) map[string]any {
	t.Helper()

	status, body := doJSON(t, client, http.MethodPost, base+"/api/register", map[string]any{
		"username": username,
		"password": "hunter22",
		"email":    username + "@example.com",
		"userType": string(userType),
		"name":     strings.ToUpper(username[:1]) + username[1:],
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", username, status, body)
	}

	var user map[string]any
	if err := json.Unmarshal(body, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return user
}

func TestMarketplaceFlow(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL

	company := newClient(t)
	influencer := newClient(t)

	register(t, company, base, "acme", model.UserTypeCompany)
	influencerUser := register(t, influencer, base, "stella", model.UserTypeInfluencer)

	// 企业发布 active 活动
	status, body := doJSON(t, company, http.MethodPost, base+"/api/campaigns", map[string]any{
		"title":       "Spring launch",
		"description": "Teaser push for the new line",
		"budget":      "$5k",
		"status":      "active",
	})
	if status != http.StatusOK {
		t.Fatalf("create campaign: status %d body %s", status, body)
	}
	var campaign map[string]any
	if err := json.Unmarshal(body, &campaign); err != nil {
		t.Fatalf("decode campaign: %v", err)
	}
	campaignID := campaign["id"].(float64)

	// 达人在活动大厅能看到
	status, body = doJSON(t, influencer, http.MethodGet, base+"/api/campaigns", nil)
	if status != http.StatusOK {
		t.Fatalf("list campaigns: status %d body %s", status, body)
	}
	var active []map[string]any
	if err := json.Unmarshal(body, &active); err != nil {
		t.Fatalf("decode campaigns: %v", err)
	}
	if len(active) != 1 || active[0]["id"].(float64) != campaignID {
		t.Fatalf("active campaigns missing the new one: %s", body)
	}

	// 达人提交合作申请，服务端强制 pending 并覆盖 influencerId
	status, body = doJSON(t, influencer, http.MethodPost, base+"/api/connections", map[string]any{
		"campaignId": campaignID,
		"status":     "accepted",
	})
	if status != http.StatusOK {
		t.Fatalf("create connection: status %d body %s", status, body)
	}
	var conn map[string]any
	if err := json.Unmarshal(body, &conn); err != nil {
		t.Fatalf("decode connection: %v", err)
	}
	if conn["status"] != "pending" {
		t.Fatalf("want pending, got %v", conn["status"])
	}
	if conn["influencerId"].(float64) != influencerUser["id"].(float64) {
		t.Fatalf("influencerId not forced to caller: %s", body)
	}
	connID := conn["id"].(float64)

	// 企业看到 pending 申请
	status, body = doJSON(t, company, http.MethodGet, fmt.Sprintf("%s/api/connections/campaign/%.0f", base, campaignID), nil)
	if status != http.StatusOK {
		t.Fatalf("list campaign connections: status %d body %s", status, body)
	}
	var forCampaign []map[string]any
	if err := json.Unmarshal(body, &forCampaign); err != nil {
		t.Fatalf("decode connections: %v", err)
	}
	if len(forCampaign) != 1 || forCampaign[0]["status"] != "pending" {
		t.Fatalf("unexpected campaign connections: %s", body)
	}

	// 企业接受
	status, body = doJSON(t, company, http.MethodPatch, fmt.Sprintf("%s/api/connections/%.0f/status", base, connID), map[string]any{
		"status": "accepted",
	})
	if status != http.StatusOK {
		t.Fatalf("accept connection: status %d body %s", status, body)
	}

	// 达人侧随后可见 accepted
	status, body = doJSON(t, influencer, http.MethodGet, base+"/api/connections/influencer", nil)
	if status != http.StatusOK {
		t.Fatalf("list own connections: status %d body %s", status, body)
	}
	var own []map[string]any
	if err := json.Unmarshal(body, &own); err != nil {
		t.Fatalf("decode connections: %v", err)
	}
	if len(own) != 1 || own[0]["status"] != "accepted" {
		t.Fatalf("connection not accepted: %s", body)
	}
}

func TestRoleEnforcement(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL

	anon := newClient(t)
	influencer := newClient(t)
	company := newClient(t)

	register(t, influencer, base, "stella", model.UserTypeInfluencer)
	register(t, company, base, "acme", model.UserTypeCompany)

	campaignBody := map[string]any{
		"title":       "Spring launch",
		"description": "Teaser push",
		"budget":      "$5k",
		"status":      "active",
	}

	// 未登录一律 401
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/campaigns"},
		{http.MethodGet, "/api/campaigns/company"},
		{http.MethodPost, "/api/campaigns"},
		{http.MethodGet, "/api/connections/influencer"},
		{http.MethodGet, "/api/connections/campaign/1"},
		{http.MethodPost, "/api/upload"},
		{http.MethodPatch, "/api/profile"},
		{http.MethodPost, "/api/logout"},
		{http.MethodGet, "/api/user"},
	} {
		status, _ := doJSON(t, anon, route.method, base+route.path, map[string]any{})
		if status != http.StatusUnauthorized {
			t.Errorf("%s %s: want 401, got %d", route.method, route.path, status)
		}
	}

	// 角色不符一律 403
	if status, _ := doJSON(t, influencer, http.MethodPost, base+"/api/campaigns", campaignBody); status != http.StatusForbidden {
		t.Errorf("influencer create campaign: want 403, got %d", status)
	}
	if status, _ := doJSON(t, influencer, http.MethodGet, base+"/api/campaigns/company", nil); status != http.StatusForbidden {
		t.Errorf("influencer list company campaigns: want 403, got %d", status)
	}
	if status, _ := doJSON(t, influencer, http.MethodPatch, base+"/api/connections/1/status", map[string]any{"status": "accepted"}); status != http.StatusForbidden {
		t.Errorf("influencer update connection: want 403, got %d", status)
	}
	if status, _ := doJSON(t, company, http.MethodPost, base+"/api/connections", map[string]any{"campaignId": 1}); status != http.StatusForbidden {
		t.Errorf("company create connection: want 403, got %d", status)
	}
	if status, _ := doJSON(t, company, http.MethodGet, base+"/api/connections/influencer", nil); status != http.StatusForbidden {
		t.Errorf("company list influencer connections: want 403, got %d", status)
	}
}

func TestValidationAndConflicts(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL

	client := newClient(t)
	register(t, client, base, "acme", model.UserTypeCompany)

	// 缺字段 400，带字段明细
	status, body := doJSON(t, client, http.MethodPost, base+"/api/campaigns", map[string]any{"title": "x"})
	if status != http.StatusBadRequest {
		t.Fatalf("want 400, got %d body %s", status, body)
	}
	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := resp["fields"]; !ok {
		t.Fatalf("missing field detail: %s", body)
	}

	// 非法活动状态 400
	status, _ = doJSON(t, client, http.MethodPost, base+"/api/campaigns", map[string]any{
		"title": "x", "description": "y", "budget": "$1", "status": "archived",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("bad status: want 400, got %d", status)
	}

	// 用户名重复 409
	other := newClient(t)
	status, _ = doJSON(t, other, http.MethodPost, base+"/api/register", map[string]any{
		"username": "acme", "password": "hunter22", "email": "x@example.com",
		"userType": "company", "name": "Other",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate username: want 409, got %d", status)
	}

	// 非法申请状态 400，缺行 404
	status, _ = doJSON(t, client, http.MethodPatch, base+"/api/connections/1/status", map[string]any{"status": "maybe"})
	if status != http.StatusBadRequest {
		t.Fatalf("invalid connection status: want 400, got %d", status)
	}
	status, _ = doJSON(t, client, http.MethodPatch, base+"/api/connections/999/status", map[string]any{"status": "accepted"})
	if status != http.StatusNotFound {
		t.Fatalf("missing connection: want 404, got %d", status)
	}

	// 错误密码 401
	status, _ = doJSON(t, newClient(t), http.MethodPost, base+"/api/login", map[string]any{
		"username": "acme", "password": "wrong-password",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("bad login: want 401, got %d", status)
	}
}

func TestProfileAndUsers(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL

	client := newClient(t)
	user := register(t, client, base, "stella", model.UserTypeInfluencer)
	register(t, newClient(t), base, "acme", model.UserTypeCompany)

	// 公开资料页，未登录可看，密码不下发
	anon := newClient(t)
	status, body := doJSON(t, anon, http.MethodGet, fmt.Sprintf("%s/api/profile/%.0f", base, user["id"].(float64)), nil)
	if status != http.StatusOK {
		t.Fatalf("get profile: status %d body %s", status, body)
	}
	if strings.Contains(string(body), "password") || strings.Contains(string(body), "hunter22") {
		t.Fatalf("password leaked: %s", body)
	}

	if status, _ := doJSON(t, anon, http.MethodGet, base+"/api/profile/999", nil); status != http.StatusNotFound {
		t.Fatalf("missing profile: want 404, got %d", status)
	}

	// 只改自己的资料
	status, body = doJSON(t, client, http.MethodPatch, base+"/api/profile", map[string]any{
		"bio":        "travel & lifestyle",
		"websiteUrl": "https://stella.example.com",
	})
	if status != http.StatusOK {
		t.Fatalf("patch profile: status %d body %s", status, body)
	}
	var updated map[string]any
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated["bio"] != "travel & lifestyle" || updated["name"] != "Stella" {
		t.Fatalf("unexpected profile: %s", body)
	}

	// 按角色筛选用户列表
	status, body = doJSON(t, anon, http.MethodGet, base+"/api/users/influencer", nil)
	if status != http.StatusOK {
		t.Fatalf("list influencers: status %d body %s", status, body)
	}
	var influencers []map[string]any
	if err := json.Unmarshal(body, &influencers); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(influencers) != 1 || influencers[0]["username"] != "stella" {
		t.Fatalf("unexpected influencer list: %s", body)
	}

	if status, _ := doJSON(t, anon, http.MethodGet, base+"/api/users/admin", nil); status != http.StatusBadRequest {
		t.Fatalf("bad user type: want 400, got %d", status)
	}
}

func TestLogoutInvalidatesCookie(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL

	client := newClient(t)
	register(t, client, base, "stella", model.UserTypeInfluencer)

	if status, _ := doJSON(t, client, http.MethodGet, base+"/api/user", nil); status != http.StatusOK {
		t.Fatalf("current user before logout: want 200, got %d", status)
	}
	if status, _ := doJSON(t, client, http.MethodPost, base+"/api/logout", nil); status != http.StatusOK {
		t.Fatalf("logout failed")
	}
	if status, _ := doJSON(t, client, http.MethodGet, base+"/api/user", nil); status != http.StatusUnauthorized {
		t.Fatalf("current user after logout: want 401, got %d", status)
	}
}

func TestUpload(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL

	client := newClient(t)
	register(t, client, base, "stella", model.UserTypeInfluencer)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "avatar.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write([]byte("png-bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	w.Close()

	req, err := http.NewRequest(http.MethodPost, base+"/api/upload", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload: status %d body %s", resp.StatusCode, body)
	}
	var out map[string]string
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(out["url"], "avatar.png") {
		t.Fatalf("unexpected url %q", out["url"])
	}

	// 无文件 400
	status, _ := doJSON(t, client, http.MethodPost, base+"/api/upload", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("no file: want 400, got %d", status)
	}
}
