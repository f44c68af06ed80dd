// 演示数据生成脚本
//
// 为本地联调与学情分析演示生成一套完整的数据：知识点、题库、
// 一场期中考试及全体学生的模拟作答记录。学生能力值与知识点
// 掌握度随机生成，作答得分按掌握度推算，跑完即可直接调用
// 薄弱点分析和组卷接口看到有意义的结果。
//
// 用法: go run scripts/seed_demo_data.go [-seed 42] [-students 20]
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/config"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/database"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// sectionConfig 描述一个题型区块：题量与单题基准分。
type sectionConfig struct {
	Type      model.QuestionType
	Count     int
	BaseScore float64
}

// subjectPlan 是一个学科的出题方案。
type subjectPlan struct {
	TotalScore float64
	Sections   []sectionConfig
}

// 各学科的题型配置，分值结构参照常见高中试卷。
var subjectPlans = map[string]subjectPlan{
	"语文": {150, []sectionConfig{
		{model.QuestionChoice, 8, 4},
		{model.QuestionFillIn, 5, 5},
		{model.QuestionShortAnswer, 5, 12},
		{model.QuestionEssay, 2, 40},
	}},
	"数学": {150, []sectionConfig{
		{model.QuestionChoice, 12, 4},
		{model.QuestionFillIn, 4, 5},
		{model.QuestionShortAnswer, 6, 14},
	}},
	"英语": {150, []sectionConfig{
		{model.QuestionChoice, 20, 3},
		{model.QuestionFillIn, 5, 6},
		{model.QuestionEssay, 2, 30},
	}},
	"物理": {100, []sectionConfig{
		{model.QuestionChoice, 10, 4},
		{model.QuestionShortAnswer, 5, 12},
	}},
	"化学": {100, []sectionConfig{
		{model.QuestionChoice, 10, 4},
		{model.QuestionShortAnswer, 5, 12},
	}},
	"生物": {100, []sectionConfig{
		{model.QuestionChoice, 10, 4},
		{model.QuestionShortAnswer, 5, 12},
	}},
	"政治": {100, []sectionConfig{
		{model.QuestionChoice, 12, 4},
		{model.QuestionShortAnswer, 4, 13},
	}},
	"历史": {100, []sectionConfig{
		{model.QuestionChoice, 12, 4},
		{model.QuestionShortAnswer, 4, 13},
	}},
	"地理": {100, []sectionConfig{
		{model.QuestionChoice, 12, 4},
		{model.QuestionShortAnswer, 4, 13},
	}},
}

// 各学科的知识点目录。
var subjectPoints = map[string][]string{
	"语文": {"文言文阅读", "现代文阅读", "诗歌鉴赏", "名句默写", "成语运用", "病句辨析", "作文立意", "语言表达"},
	"数学": {"函数与方程", "三角函数", "数列", "立体几何", "解析几何", "概率统计", "导数及其应用", "不等式", "平面向量"},
	"英语": {"阅读理解", "完形填空", "语法填空", "短文改错", "书面表达", "时态语态", "定语从句", "非谓语动词"},
	"物理": {"匀变速直线运动", "牛顿运动定律", "机械能守恒", "静电场", "恒定电流", "磁场", "电磁感应", "动量守恒"},
	"化学": {"物质的量", "离子反应", "氧化还原反应", "元素周期律", "化学反应速率", "化学平衡", "电化学", "有机化学基础"},
	"生物": {"细胞的结构", "光合作用", "细胞呼吸", "遗传规律", "基因表达", "生物变异", "生态系统", "神经调节"},
	"政治": {"商品与货币", "生产与消费", "我国的政治制度", "文化的作用", "唯物论", "辩证法", "认识论", "价值观"},
	"历史": {"先秦政治制度", "秦汉大一统", "唐宋变革", "明清社会", "近代化探索", "新民主主义革命", "新中国建设", "世界近代史"},
	"地理": {"地球运动", "大气环流", "水循环", "地质地貌", "人口与城市", "农业区位", "工业区位", "区域可持续发展"},
}

var (
	surnames   = []string{"张", "王", "李", "赵", "刘", "陈", "杨", "黄", "周", "吴"}
	givenNames = []string{"伟", "芳", "娜", "敏", "静", "磊", "军", "洋", "勇", "艳", "杰", "涛", "明", "超", "秀英", "子轩", "雨桐", "浩然", "欣怡", "宇航"}
)

// seededQuestion 记录生成的题目及其难度档位，档位用于作答模拟。
type seededQuestion struct {
	question *model.Question
	level    int
	pointIDs []uint
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "随机种子，固定后可复现同一批数据")
	studentCount := flag.Int("students", 20, "生成的学生数量")
	flag.Parse()

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		fmt.Printf("读取配置文件失败: %v\n", err)
		return
	}
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Printf("解析配置文件失败: %v\n", err)
		return
	}

	logger.InitLogger(&cfg)
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("连接数据库失败", zap.Error(err))
	}
	rng := rand.New(rand.NewSource(*seed))

	var existing int64
	db.Model(&model.Question{}).Count(&existing)
	if existing > 0 {
		logger.Log.Warn("题库已有数据，跳过演示数据生成", zap.Int64("questions", existing))
		return
	}

	var subjects []model.Subject
	if err := db.Order("id").Find(&subjects).Error; err != nil {
		logger.Log.Fatal("读取学科失败", zap.Error(err))
	}

	students := seedStudents(db, rng, *studentCount)
	logger.Log.Info("学生生成完成", zap.Int("count", len(students)))

	totalQuestions := 0
	totalAnswers := 0
	for _, subject := range subjects {
		plan, ok := subjectPlans[subject.Name]
		if !ok {
			continue
		}
		points := seedKnowledgePoints(db, rng, &subject)
		questions := seedExamQuestions(db, rng, &subject, plan, points)
		exam := seedExam(db, &subject, questions)
		answers := simulateAnswers(db, rng, exam, questions, points, students)
		totalQuestions += len(questions)
		totalAnswers += answers
		logger.Log.Info("学科演示数据生成完成",
			zap.String("subject", subject.Name),
			zap.Int("points", len(points)),
			zap.Int("questions", len(questions)))
	}

	logger.Log.Info("演示数据生成完成",
		zap.Int("students", len(students)),
		zap.Int("questions", totalQuestions),
		zap.Int("answers", totalAnswers),
		zap.Int64("seed", *seed))
}

func seedStudents(db *gorm.DB, rng *rand.Rand, count int) []*model.Student {
	grades := []string{"高一", "高二", "高三"}
	students := make([]*model.Student, 0, count)
	for i := 0; i < count; i++ {
		grade := grades[rng.Intn(len(grades))]
		student := &model.Student{
			StudentNo:      fmt.Sprintf("2024%03d", i+1),
			Name:           surnames[rng.Intn(len(surnames))] + givenNames[rng.Intn(len(givenNames))],
			Gender:         []string{"男", "女"}[rng.Intn(2)],
			Grade:          grade,
			ClassName:      fmt.Sprintf("%d班", 1+rng.Intn(4)),
			EnrollmentYear: 2024,
		}
		if err := db.Create(student).Error; err != nil {
			logger.Log.Fatal("创建学生失败", zap.Error(err))
		}
		students = append(students, student)
	}
	return students
}

func seedKnowledgePoints(db *gorm.DB, rng *rand.Rand, subject *model.Subject) []*model.KnowledgePoint {
	names := subjectPoints[subject.Name]
	points := make([]*model.KnowledgePoint, 0, len(names))
	for _, name := range names {
		point := &model.KnowledgePoint{
			SubjectID: subject.ID,
			Name:      name,
			Level:     1 + rng.Intn(5),
		}
		if err := db.Create(point).Error; err != nil {
			logger.Log.Fatal("创建知识点失败", zap.Error(err))
		}
		points = append(points, point)
	}
	return points
}

// seedExamQuestions 按出题方案生成题目。每题随机关联 1~3 个知识点，
// 难度取关联知识点等级的平均值，分值在基准分上下小幅浮动。
func seedExamQuestions(db *gorm.DB, rng *rand.Rand, subject *model.Subject, plan subjectPlan, points []*model.KnowledgePoint) []*seededQuestion {
	pickCounts := []int{1, 1, 2, 2, 3}
	var questions []*seededQuestion
	seq := 0
	for _, section := range plan.Sections {
		for i := 0; i < section.Count; i++ {
			seq++
			picked := pickPoints(rng, points, pickCounts[rng.Intn(len(pickCounts))])
			levelSum := 0
			names := ""
			for idx, p := range picked {
				levelSum += p.Level
				if idx > 0 {
					names += "、"
				}
				names += p.Name
			}
			level := int(math.Round(float64(levelSum) / float64(len(picked))))
			score := section.BaseScore + []float64{-1, 0, 0, 1}[rng.Intn(4)]
			if score < 1 {
				score = 1
			}

			question := &model.Question{
				SubjectID:  subject.ID,
				Type:       section.Type,
				Content:    fmt.Sprintf("【%s】第%d题：考查%s的%s。", subject.Name, seq, names, section.Type.DisplayName()),
				Answer:     fmt.Sprintf("第%d题参考答案", seq),
				Analysis:   fmt.Sprintf("本题围绕%s命制，注意审题与步骤完整。", names),
				Difficulty: 0.1 + 0.2*float64(level-1),
				Score:      score,
			}
			if err := db.Create(question).Error; err != nil {
				logger.Log.Fatal("创建题目失败", zap.Error(err))
			}
			ids := make([]uint, 0, len(picked))
			for _, p := range picked {
				link := &model.QuestionKnowledge{
					QuestionID:       question.ID,
					KnowledgePointID: p.ID,
					Weight:           1.0 / float64(len(picked)),
				}
				if err := db.Create(link).Error; err != nil {
					logger.Log.Fatal("关联知识点失败", zap.Error(err))
				}
				ids = append(ids, p.ID)
			}
			questions = append(questions, &seededQuestion{question: question, level: level, pointIDs: ids})
		}
	}
	return questions
}

func pickPoints(rng *rand.Rand, points []*model.KnowledgePoint, n int) []*model.KnowledgePoint {
	if n > len(points) {
		n = len(points)
	}
	perm := rng.Perm(len(points))
	picked := make([]*model.KnowledgePoint, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, points[idx])
	}
	return picked
}

func seedExam(db *gorm.DB, subject *model.Subject, questions []*seededQuestion) *model.Exam {
	total := 0.0
	for _, q := range questions {
		total += q.question.Score
	}
	examDate := time.Date(2024, 11, 6, 9, 0, 0, 0, time.Local)
	exam := &model.Exam{
		Name:       fmt.Sprintf("2024学年期中考试·%s", subject.Name),
		SubjectID:  subject.ID,
		ExamType:   "期中",
		ExamDate:   &examDate,
		TotalScore: total,
		GradeScope: "高一",
	}
	if err := db.Create(exam).Error; err != nil {
		logger.Log.Fatal("创建试卷失败", zap.Error(err))
	}
	for idx, q := range questions {
		eq := &model.ExamQuestion{
			ExamID:     exam.ID,
			QuestionID: q.question.ID,
			OrderNum:   idx + 1,
		}
		if err := db.Create(eq).Error; err != nil {
			logger.Log.Fatal("关联试题失败", zap.Error(err))
		}
	}
	return exam
}

// simulateAnswers 为每个学生模拟一次完整作答。
//
// 学生有一个总体能力值，对每个知识点的掌握度在能力值附近波动；
// 单题得分由掌握度和题目难度推算：客观题只有对错，主观题按比例
// 给分并取整到 0.5 分。由此得到的作答分布让薄弱点分析能够还原出
// 每个学生掌握度低的知识点。
func simulateAnswers(db *gorm.DB, rng *rand.Rand, exam *model.Exam, questions []*seededQuestion, points []*model.KnowledgePoint, students []*model.Student) int {
	written := 0
	for _, student := range students {
		ability := 0.3 + 0.65*rng.Float64()
		mastery := make(map[uint]float64, len(points))
		for _, p := range points {
			m := ability + rng.NormFloat64()*0.15
			mastery[p.ID] = clamp(m, 0.05, 0.98)
		}

		obtained := 0.0
		for _, q := range questions {
			avgMastery := 0.0
			for _, id := range q.pointIDs {
				avgMastery += mastery[id]
			}
			avgMastery /= float64(len(q.pointIDs))

			difficultyFactor := 1.0 - float64(q.level-1)*0.1
			correctness := clamp(ability*avgMastery*difficultyFactor+rng.NormFloat64()*0.15, 0, 1)

			var score float64
			var correct bool
			if q.question.Type == model.QuestionChoice || q.question.Type == model.QuestionFillIn {
				// 客观题全对或全错
				if correctness > 0.6 {
					score = q.question.Score
					correct = true
				}
			} else {
				// 主观题按比例给分，写出相关内容就有保底分，取整到 0.5 分
				minRate := 0.0
				if correctness > 0.3 {
					minRate = 0.2
				}
				rate := minRate + correctness*(1-minRate)
				score = math.Round(q.question.Score*rate*2) / 2
				correct = score >= q.question.Score*0.8
			}

			answer := &model.StudentAnswer{
				StudentID:     student.ID,
				ExamID:        exam.ID,
				QuestionID:    q.question.ID,
				AnswerText:    fmt.Sprintf("%s的作答内容", student.Name),
				ScoreObtained: score,
				IsCorrect:     correct,
			}
			if err := db.Create(answer).Error; err != nil {
				logger.Log.Fatal("写入作答记录失败", zap.Error(err))
			}
			obtained += score
			written++
		}

		rate := 0.0
		if exam.TotalScore > 0 {
			rate = obtained / exam.TotalScore
		}
		examScore := &model.ExamScore{
			ExamID:    exam.ID,
			StudentID: student.ID,
			Score:     obtained,
			ScoreRate: rate,
		}
		if err := db.Create(examScore).Error; err != nil {
			logger.Log.Fatal("写入考试成绩失败", zap.Error(err))
		}
	}
	return written
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
