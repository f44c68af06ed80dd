package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrInvalidCredentials   = errors.New("邮箱或密码错误")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrStudentNotFound      = errors.New("student not found")
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrExamNotFound         = errors.New("exam not found")
	ErrAnswerRecorded       = errors.New("answers already recorded for this student and exam")
	ErrStudentExists        = errors.New("该学号已存在")
	ErrPointNotFound        = errors.New("knowledge point not found")
	ErrInvalidScore         = errors.New("题目分值必须为正数")
	ErrInvalidDifficulty    = errors.New("题目难度必须在0到1之间")
	ErrPointSubjectMismatch = errors.New("知识点与题目不属于同一学科")
)
