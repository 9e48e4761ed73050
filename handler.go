package httpd

import "errors"

// Handler 把解码后的请求文本转换成响应.
// 返回错误表示无法给出任何响应, 连接会被直接关闭.
type Handler interface {
	Respond(text string) (*Response, error)
}

// Respond 解析请求, 查找文件并构造响应
func (s *FileServer) Respond(text string) (*Response, error) {
	req, err := ParseRequest(text)
	if err != nil {
		return s.fail(err)
	}
	file, err := s.Resolve(req.Target)
	if err != nil {
		return s.fail(err)
	}
	return Build(OK, file.ContentType, file.Body), nil
}

// fail 将带标签的错误转换成 400 或 404 响应, 其它错误原样返回
func (s *FileServer) fail(err error) (*Response, error) {
	kind, ok := KindOf(err)
	if !ok {
		return nil, err
	}
	switch kind {
	case FileNotFound:
		s.Logger.Warn().Msgf("File not found: `%s`", detailOf(err))
		page, err := s.NotFoundPage()
		if err != nil {
			return nil, err
		}
		return Build(NotFound, page.ContentType, page.Body), nil
	case MalformedRequest:
		s.Logger.Error().Msg("Bad request: could not parse request")
	case UnsupportedMethod:
		s.Logger.Error().Str("method", detailOf(err)).Msg("Bad request: unsupported request method")
	case UnsupportedFileType:
		s.Logger.Error().Str("path", detailOf(err)).Msg("Bad request: unsupported file format")
	}
	return Build(BadRequest, 0, nil), nil
}

func detailOf(err error) string {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Detail
	}
	return ""
}
