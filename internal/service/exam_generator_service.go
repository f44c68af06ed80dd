package service

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/repository"
)

// 组卷策略参数
const (
	// WeakPointLimit 参与组卷的薄弱知识点数量上限
	WeakPointLimit = 15
	// WeakPreferenceProbability 单个槽位偏向薄弱知识点选题的概率
	WeakPreferenceProbability = 0.7
	// DifficultyWindow 单个槽位的难度检索窗口：目标 ± 0.15
	DifficultyWindow = 0.15
	// DifficultySpread 同题型内难度梯度的摆幅：基准 ± 0.2
	DifficultySpread = 0.2
	// AnalyzedWeaknessEcho 组卷结果中回显的薄弱点数量
	AnalyzedWeaknessEcho = 10
)

// QuestionSearcher 题库检索契约
type QuestionSearcher interface {
	Search(filter *repository.QuestionFilter) ([]model.Question, error)
}

// 默认题型模板：主科 150 分、副科 100 分，其余总分走通用模板
var defaultTemplates = map[float64]model.ExamTemplate{
	150: {
		{Type: model.QuestionChoice, Count: 12, Score: 4},
		{Type: model.QuestionFillIn, Count: 4, Score: 5},
		{Type: model.QuestionShortAnswer, Count: 6, Score: 15},
	},
	100: {
		{Type: model.QuestionChoice, Count: 10, Score: 4},
		{Type: model.QuestionShortAnswer, Count: 5, Score: 12},
	},
}

var genericTemplate = model.ExamTemplate{
	{Type: model.QuestionChoice, Count: 10, Score: 4},
	{Type: model.QuestionFillIn, Count: 5, Score: 5},
	{Type: model.QuestionShortAnswer, Count: 5, Score: 10},
}

// DefaultTemplate 返回目标总分对应的默认题型模板副本
func DefaultTemplate(totalScore float64) model.ExamTemplate {
	template, ok := defaultTemplates[totalScore]
	if !ok {
		template = genericTemplate
	}
	out := make(model.ExamTemplate, len(template))
	copy(out, template)
	return out
}

// 难度档位对应的数值目标
var difficultyTargets = map[model.DifficultyLevel]float64{
	model.DifficultyEasy:   0.3,
	model.DifficultyMedium: 0.5,
	model.DifficultyHard:   0.7,
}

// DifficultyTarget 难度档位映射为 [0,1] 内的数值目标，未知档位按中等处理
func DifficultyTarget(level model.DifficultyLevel) float64 {
	if target, ok := difficultyTargets[level]; ok {
		return target
	}
	return difficultyTargets[model.DifficultyMedium]
}

// SlotDifficultyTarget 同一题型内第 index 题（0 起）的难度目标。
// 难度在 [base-0.2, base+0.2]（截断到 [0.1, 0.9]）内随题号线性爬升，先易后难。
// 梯度只在题型块内部生效，不跨题型累计。
func SlotDifficultyTarget(index, count int, base float64) float64 {
	progress := 0.0
	if count > 0 {
		progress = float64(index) / float64(count)
	}
	floor := math.Max(0.1, base-DifficultySpread)
	ceiling := math.Min(0.9, base+DifficultySpread)
	return floor + (ceiling-floor)*progress
}

// ExamGeneratorService 智能组卷引擎：按薄弱点与难度梯度从题库选题。
// 一次组卷在单个调用内同步完成，已选题排除集只属于该次调用。
type ExamGeneratorService struct {
	Weakness  *WeaknessAnalysisService
	Questions QuestionSearcher
	Points    KnowledgePointReader

	mu  sync.Mutex // 保护 rng，组卷可能被多个请求并发调用
	rng *rand.Rand
}

// NewExamGeneratorService rng 为 nil 时使用时钟熵源；测试注入固定种子以复现选题。
func NewExamGeneratorService(weakness *WeaknessAnalysisService, questions QuestionSearcher, points KnowledgePointReader, rng *rand.Rand) *ExamGeneratorService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ExamGeneratorService{
		Weakness:  weakness,
		Questions: questions,
		Points:    points,
		rng:       rng,
	}
}

// GenerateExamRequest 组卷参数
type GenerateExamRequest struct {
	StudentID         uint
	SubjectID         uint
	TotalScore        float64
	FocusOnWeaknesses bool
	DifficultyLevel   model.DifficultyLevel
	Template          model.ExamTemplate // 为空时按 TotalScore 取默认模板
}

// GenerateExam 为学生生成针对性试卷。
//
// 流程：先用薄弱点分析取最弱的至多 15 个知识点；随后按模板逐槽位选题，
// 每个槽位的难度目标在题型块内先易后难爬升，偏向薄弱点的槽位先在薄弱
// 知识点内检索、为空再放宽重试。题库不足时不报错：选不出题的槽位直接
// 跳过，返回较短的试卷，并在建议列表中如实说明。
func (s *ExamGeneratorService) GenerateExam(req GenerateExamRequest) (*model.GeneratedExam, error) {
	weaknesses, err := s.Weakness.RankWeaknesses(req.StudentID, req.SubjectID, DefaultWeaknessThreshold)
	if err != nil {
		return nil, err
	}

	weakIDs := make([]uint, 0, WeakPointLimit)
	for _, weak := range weaknesses {
		if len(weakIDs) == WeakPointLimit {
			break
		}
		weakIDs = append(weakIDs, weak.KnowledgePointID)
	}
	weakSet := make(map[uint]bool, len(weakIDs))
	for _, id := range weakIDs {
		weakSet[id] = true
	}

	template := req.Template
	if len(template) == 0 {
		template = DefaultTemplate(req.TotalScore)
	}
	base := DifficultyTarget(req.DifficultyLevel)

	var selected []model.GeneratedQuestion
	var usedIDs []uint
	covered := make(map[uint]bool)

	for _, entry := range template {
		for i := 0; i < entry.Count; i++ {
			target := SlotDifficultyTarget(i, entry.Count, base)
			minDiff := target - DifficultyWindow
			maxDiff := target + DifficultyWindow
			filter := repository.QuestionFilter{
				SubjectID:     req.SubjectID,
				Type:          entry.Type,
				MinDifficulty: &minDiff,
				MaxDifficulty: &maxDiff,
				ExcludeIDs:    usedIDs,
			}

			var preferred []uint
			if req.FocusOnWeaknesses && len(weakIDs) > 0 && s.chance(WeakPreferenceProbability) {
				preferred = weakIDs
			}

			question, err := s.SelectQuestion(filter, preferred)
			if err != nil {
				return nil, err
			}
			if question == nil {
				// 放宽后仍无候选，跳过该槽位
				continue
			}
			usedIDs = append(usedIDs, question.ID)

			points, err := s.Points.GetByQuestion(question.ID)
			if err != nil {
				return nil, err
			}
			isWeak := false
			for _, kp := range points {
				if weakSet[kp.ID] {
					isWeak = true
					covered[kp.ID] = true
				}
			}

			selected = append(selected, model.GeneratedQuestion{
				Question:    *question,
				OrderNum:    len(selected) + 1,
				IsWeakPoint: isWeak,
			})
		}
	}

	coverage := model.WeaknessCoverage{Covered: len(covered), Total: len(weakIDs)}
	if len(weakIDs) > 0 {
		coverage.Rate = round2(float64(len(covered)) / float64(len(weakIDs)))
	}

	stats := difficultyStats(selected)

	var actualTotal float64
	for _, q := range selected {
		actualTotal += q.Score
	}

	echoed := weaknesses
	if len(echoed) > AnalyzedWeaknessEcho {
		echoed = echoed[:AnalyzedWeaknessEcho]
	}

	return &model.GeneratedExam{
		StudentID:          req.StudentID,
		SubjectID:          req.SubjectID,
		Questions:          selected,
		TotalScore:         actualTotal,
		ActualCount:        len(selected),
		DifficultyStats:    stats,
		WeaknessCoverage:   coverage,
		Recommendations:    buildRecommendations(len(selected), len(weaknesses), coverage, stats),
		WeaknessesAnalyzed: echoed,
	}, nil
}

// SelectQuestion 按条件选出一道题。preferredKPIDs 非空时先限定在这些知识点内
// 检索，无候选则去掉知识点限制、其余条件不变地重试一次；这是唯一的放宽
// 策略，两次都为空时返回 nil 而非错误。候选中等概率随机取一道。
func (s *ExamGeneratorService) SelectQuestion(filter repository.QuestionFilter, preferredKPIDs []uint) (*model.Question, error) {
	if len(preferredKPIDs) > 0 {
		filter.KnowledgePointIDs = preferredKPIDs
		candidates, err := s.Questions.Search(&filter)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			return s.pick(candidates), nil
		}
		filter.KnowledgePointIDs = nil
	}

	candidates, err := s.Questions.Search(&filter)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return s.pick(candidates), nil
}

func (s *ExamGeneratorService) pick(candidates []model.Question) *model.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	question := candidates[s.rng.Intn(len(candidates))]
	return &question
}

func (s *ExamGeneratorService) chance(probability float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < probability
}

// difficultyStats 三档难度分布与保留两位小数的平均难度，空卷为零值
func difficultyStats(questions []model.GeneratedQuestion) model.DifficultyStats {
	var stats model.DifficultyStats
	if len(questions) == 0 {
		return stats
	}

	var sum float64
	for _, q := range questions {
		sum += q.Difficulty
		switch {
		case q.Difficulty < 0.4:
			stats.Easy++
		case q.Difficulty < 0.7:
			stats.Medium++
		default:
			stats.Hard++
		}
	}
	stats.Average = round2(sum / float64(len(questions)))
	return stats
}

// buildRecommendations 组卷结论：空卷、薄弱点覆盖、难度偏向的规则化提示
func buildRecommendations(selectedCount, weaknessCount int, coverage model.WeaknessCoverage, stats model.DifficultyStats) []string {
	if selectedCount == 0 {
		return []string{"⚠️ 未能成功组卷，题库可能不足，请补充题目。"}
	}

	recommendations := make([]string, 0, 2)
	if coverage.Rate < 0.5 && weaknessCount > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"💡 试卷仅覆盖了%d/%d个薄弱知识点，建议补充相关题目。", coverage.Covered, coverage.Total))
	} else if coverage.Rate >= 0.7 {
		recommendations = append(recommendations, fmt.Sprintf(
			"✅ 试卷已覆盖%d个薄弱知识点，针对性强。", coverage.Covered))
	}

	half := float64(selectedCount) * 0.5
	if float64(stats.Easy) > half {
		recommendations = append(recommendations, "💡 试卷整体偏简单，可适当增加难度。")
	} else if float64(stats.Hard) > half {
		recommendations = append(recommendations, "💡 试卷整体偏难，建议增加简单题增强信心。")
	}
	return recommendations
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
