package testfixtures

import (
	"context"
	"errors"
	"testing"

	"github.com/example/coworking-hub/internal/application"
	"github.com/example/coworking-hub/internal/domain"
)

func TestServiceFactoryNewWikiService(t *testing.T) {
	factory := NewServiceFactory(WithIDGenerator(NewIDGenerator("wiki")))
	factory.ElevateAdmin()

	svc := factory.NewWikiService()
	item, err := svc.Add(context.Background(), application.WikiItemInput{
		Title:        "印表機操作",
		Category:     domain.WikiEquipment,
		ContentType:  domain.ContentGuide,
		Instructions: []string{"按下電源鍵"},
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if item.ID != "wiki-1" {
		t.Fatalf("expected generated ID wiki-1, got %q", item.ID)
	}
	if item.UploadDate != factory.Clock.Now().Format("2006-01-02") {
		t.Fatalf("expected upload date from factory clock, got %q", item.UploadDate)
	}
}

func TestServiceFactoryAdminSession(t *testing.T) {
	factory := NewServiceFactory()

	svc := factory.NewAnnouncementService()
	if _, err := svc.Save(context.Background(), application.AnnouncementInput{}); !errors.Is(err, application.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized before elevation, got %v", err)
	}

	factory.ElevateAdmin()
	if !factory.Store.Session().Admin {
		t.Fatal("expected elevated session")
	}
}
