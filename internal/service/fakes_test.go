package service_test

import (
	"context"
	"io"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/repository"
)

// fakeStore 内存版题库与作答历史，实现引擎消费的全部读取契约
type fakeStore struct {
	answers   []model.StudentAnswer
	questions []model.Question
	links     map[uint][]model.KnowledgePoint // question id -> 关联知识点
	catalog   []model.KnowledgePoint          // 科目知识点目录
	subjects  []model.Subject

	searchLog []repository.QuestionFilter
}

func newFakeStore() *fakeStore {
	return &fakeStore{links: make(map[uint][]model.KnowledgePoint)}
}

func (f *fakeStore) GetAllByStudent(studentID uint) ([]model.StudentAnswer, error) {
	var out []model.StudentAnswer
	for _, answer := range f.answers {
		if answer.StudentID == studentID {
			out = append(out, answer)
		}
	}
	return out, nil
}

func (f *fakeStore) GetByQuestion(questionID uint) ([]model.KnowledgePoint, error) {
	return f.links[questionID], nil
}

func (f *fakeStore) FindBySubject(subjectID uint) ([]model.KnowledgePoint, error) {
	var out []model.KnowledgePoint
	for _, kp := range f.catalog {
		if kp.SubjectID == subjectID {
			out = append(out, kp)
		}
	}
	return out, nil
}

func (f *fakeStore) GetAll() ([]model.Subject, error) {
	return f.subjects, nil
}

// Search 与存储层相同的过滤语义：条件取交集，知识点列表内部取并集，
// 排除集无条件剔除。
func (f *fakeStore) Search(filter *repository.QuestionFilter) ([]model.Question, error) {
	f.searchLog = append(f.searchLog, *filter)

	excluded := make(map[uint]bool, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		excluded[id] = true
	}
	wanted := make(map[uint]bool, len(filter.KnowledgePointIDs))
	for _, id := range filter.KnowledgePointIDs {
		wanted[id] = true
	}

	var out []model.Question
	for _, q := range f.questions {
		if filter.SubjectID > 0 && q.SubjectID != filter.SubjectID {
			continue
		}
		if filter.Type != "" && q.Type != filter.Type {
			continue
		}
		if filter.MinDifficulty != nil && q.Difficulty < *filter.MinDifficulty {
			continue
		}
		if filter.MaxDifficulty != nil && q.Difficulty > *filter.MaxDifficulty {
			continue
		}
		if excluded[q.ID] {
			continue
		}
		if len(wanted) > 0 {
			hit := false
			for _, kp := range f.links[q.ID] {
				if wanted[kp.ID] {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}
		}
		out = append(out, q)
	}
	return out, nil
}

// addQuestion 建一道题并登记知识点关联
func (f *fakeStore) addQuestion(id, subjectID uint, qType model.QuestionType, difficulty, score float64, kpIDs ...uint) {
	q := model.Question{
		SubjectID:  subjectID,
		Type:       qType,
		Difficulty: difficulty,
		Score:      score,
	}
	q.ID = id
	f.questions = append(f.questions, q)
	for _, kpID := range kpIDs {
		kp := model.KnowledgePoint{SubjectID: subjectID, Level: 1}
		kp.ID = kpID
		f.links[id] = append(f.links[id], kp)
	}
}

// linkQuestion 以完整的知识点记录（含名称）建立题目关联
func (f *fakeStore) linkQuestion(questionID uint, kp model.KnowledgePoint) {
	f.links[questionID] = append(f.links[questionID], kp)
}

// addAnswer 记一条作答
func (f *fakeStore) addAnswer(studentID, examID, questionID uint, correct bool) {
	f.answers = append(f.answers, model.StudentAnswer{
		StudentID:  studentID,
		ExamID:     examID,
		QuestionID: questionID,
		IsCorrect:  correct,
	})
}

// addSubject 登记一个科目
func (f *fakeStore) addSubject(id uint, name string) {
	subject := model.Subject{Name: name}
	subject.ID = id
	f.subjects = append(f.subjects, subject)
}

// addKnowledgePoint 把知识点登记进科目目录
func (f *fakeStore) addKnowledgePoint(id, subjectID uint, name string) {
	kp := model.KnowledgePoint{SubjectID: subjectID, Name: name, Level: 1}
	kp.ID = id
	f.catalog = append(f.catalog, kp)
}

// fakeStorage 记录最近一次上传，返回本地风格的下载地址
type fakeStorage struct {
	objectName  string
	contentType string
	content     []byte
}

func (f *fakeStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.objectName = objectName
	f.contentType = contentType
	f.content = data
	return "/uploads/" + objectName, nil
}
