package mapper

import (
	"strings"

	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/model"
)

// ContentMapper covers the simple portal content collections: news,
// documents, knowledge items and projects.
type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) NewsToEntity(n *model.News) *entity.News {
	if n == nil {
		return nil
	}
	return &entity.News{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		Author:    n.Author,
		ImageURL:  n.ImageURL,
		ObjectKey: n.ObjectKey,
		CreatedAt: n.CreatedAt,
	}
}

func (m *ContentMapper) NewsToModel(n *entity.News) *model.News {
	if n == nil {
		return nil
	}
	return &model.News{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		Author:    n.Author,
		ImageURL:  n.ImageURL,
		ObjectKey: n.ObjectKey,
		CreatedAt: n.CreatedAt,
	}
}

func (m *ContentMapper) NewsToEntities(rows []*model.News) []*entity.News {
	entities := make([]*entity.News, len(rows))
	for i, n := range rows {
		entities[i] = m.NewsToEntity(n)
	}
	return entities
}

func (m *ContentMapper) DocumentToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}
	return &entity.Document{
		Id:          d.Id,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		FileURL:     d.FileURL,
		ObjectKey:   d.ObjectKey,
		UploadedAt:  d.UploadedAt,
	}
}

func (m *ContentMapper) DocumentToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}
	return &model.Document{
		Id:          d.Id,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		FileURL:     d.FileURL,
		ObjectKey:   d.ObjectKey,
		UploadedAt:  d.UploadedAt,
	}
}

func (m *ContentMapper) DocumentToEntities(rows []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(rows))
	for i, d := range rows {
		entities[i] = m.DocumentToEntity(d)
	}
	return entities
}

func (m *ContentMapper) KnowledgeToEntity(k *model.KnowledgeItem) *entity.KnowledgeItem {
	if k == nil {
		return nil
	}
	return &entity.KnowledgeItem{
		Id:        k.Id,
		Title:     k.Title,
		Content:   k.Content,
		Category:  k.Category,
		Author:    k.Author,
		CreatedAt: k.CreatedAt,
	}
}

func (m *ContentMapper) KnowledgeToModel(k *entity.KnowledgeItem) *model.KnowledgeItem {
	if k == nil {
		return nil
	}
	return &model.KnowledgeItem{
		Id:        k.Id,
		Title:     k.Title,
		Content:   k.Content,
		Category:  k.Category,
		Author:    k.Author,
		CreatedAt: k.CreatedAt,
	}
}

func (m *ContentMapper) KnowledgeToEntities(rows []*model.KnowledgeItem) []*entity.KnowledgeItem {
	entities := make([]*entity.KnowledgeItem, len(rows))
	for i, k := range rows {
		entities[i] = m.KnowledgeToEntity(k)
	}
	return entities
}

func (m *ContentMapper) ProjectToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}
	var departments []string
	if p.Departments != "" {
		for _, d := range strings.Split(p.Departments, ",") {
			departments = append(departments, strings.TrimSpace(d))
		}
	}
	return &entity.Project{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Departments: departments,
		ImageURL:    p.ImageURL,
		ObjectKey:   p.ObjectKey,
		IsCompleted: p.IsCompleted,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *ContentMapper) ProjectToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	return &model.Project{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Departments: strings.Join(p.Departments, ","),
		ImageURL:    p.ImageURL,
		ObjectKey:   p.ObjectKey,
		IsCompleted: p.IsCompleted,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *ContentMapper) ProjectToEntities(rows []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, len(rows))
	for i, p := range rows {
		entities[i] = m.ProjectToEntity(p)
	}
	return entities
}

func (m *ContentMapper) RequestToEntity(r *model.Request) *entity.Request {
	if r == nil {
		return nil
	}
	return &entity.Request{
		Id:           r.Id,
		Type:         r.Type,
		EmployeeCode: r.EmployeeCode,
		EmployeeName: r.EmployeeName,
		Details:      r.Details,
		Status:       entity.RequestStatus(r.Status),
		SubmittedAt:  r.SubmittedAt,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		AssignedTo:   r.AssignedTo,
	}
}

func (m *ContentMapper) RequestToModel(r *entity.Request) *model.Request {
	if r == nil {
		return nil
	}
	return &model.Request{
		Id:           r.Id,
		Type:         r.Type,
		EmployeeCode: r.EmployeeCode,
		EmployeeName: r.EmployeeName,
		Details:      r.Details,
		Status:       string(r.Status),
		SubmittedAt:  r.SubmittedAt,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		AssignedTo:   r.AssignedTo,
	}
}

func (m *ContentMapper) RequestToEntities(rows []*model.Request) []*entity.Request {
	entities := make([]*entity.Request, len(rows))
	for i, r := range rows {
		entities[i] = m.RequestToEntity(r)
	}
	return entities
}
